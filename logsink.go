package registry

import (
	"log/slog"
	"strings"
)

type sinkWriter struct {
	sink func(string)
}

// Write forwards one handler record per call. A panicking sink must not
// take the registry operation down with it.
func (w sinkWriter) Write(b []byte) (n int, err error) {
	defer func() {
		if recover() != nil {
			n, err = len(b), nil
		}
	}()

	w.sink(strings.TrimSuffix(string(b), "\n"))
	return len(b), nil
}

func newSinkLogger(sink func(string)) *slog.Logger {
	if sink == nil {
		return nil
	}

	handler := slog.NewTextHandler(
		sinkWriter{sink: sink}, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
					return slog.Attr{}
				}
				return a
			},
		},
	)
	return slog.New(handler)
}
