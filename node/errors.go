package node

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrServiceUnknown = errors.New("unknown service")
	ErrNodeRunning    = errors.New("node already running")
	ErrNodeStopped    = errors.New("node not started")
)

// DuplicateServiceError is returned when two services are registered under one name.
type DuplicateServiceError struct {
	Kind string
}

func (e *DuplicateServiceError) Error() string {
	return fmt.Sprintf("duplicate service: %s", e.Kind)
}

// StopError is returned if a node fails to stop some of its services.
type StopError struct {
	Services map[string]error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("services: %v", e.Services)
}
