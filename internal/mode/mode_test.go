package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode   Mode
		name   string
		caches bool
	}{
		{LazySingleton, "lazySingleton", true},
		{EagerSingleton, "eagerSingleton", true},
		{LazyFactory, "lazyFactory", false},
		{Mode(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				assert.Equal(t, tt.name, tt.mode.String())
				assert.Equal(t, tt.caches, tt.mode.Caches())
			},
		)
	}
}
