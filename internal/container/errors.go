package container

import (
	"fmt"
	"strings"
)

type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not registered: %s", e.Key)
}

type AlreadyRegisteredError struct {
	Key string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("already registered: %s", e.Key)
}

// CycleError reports a builder that, directly or through other builders,
// resolved the type it is building. Chain starts and ends with that type.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "cyclic dependency: " + strings.Join(e.Chain, " -> ")
}
