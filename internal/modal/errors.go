package modal

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyMounted is returned when Mount is called on a mounted controller.
	ErrAlreadyMounted = errors.New("modal: controller is already mounted")
	// ErrSurfaceClaimed is returned when a second controller tries to own a surface.
	ErrSurfaceClaimed = errors.New("modal: surface is already claimed by another controller")
	// ErrNotConnected is returned by ShowModal on a surface with no parent.
	ErrNotConnected = errors.New("modal: surface is not attached to a host")
	// ErrNoHost is returned when a self-owned controller is mounted into nothing.
	ErrNoHost = errors.New("modal: no host node to mount into")
)

// StructuralError reports that a host-owned controller was placed somewhere
// other than directly inside a dialog surface. It is a programming error.
type StructuralError struct {
	Component string
	Found     string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s must be placed inside a dialog surface, found <%s> instead", e.Component, e.Found)
}

// ContentError wraps a failure raised by a content provider. Panics recovered
// at the content boundary are reported with Panic set.
type ContentError struct {
	Source string
	Err    error
	Panic  bool
}

func (e *ContentError) Error() string {
	if e.Panic {
		return fmt.Sprintf("%s: content provider panicked: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
