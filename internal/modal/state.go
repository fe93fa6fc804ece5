package modal

import (
	"fmt"
	"strings"
)

// State is the open/closed state of a modal instance.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// String returns the toggle label for the state ("open" or "closed").
func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

func stateOf(open bool) State {
	if open {
		return StateOpen
	}
	return StateClosed
}

// OwnershipMode selects who owns the dialog surface of a controller.
// It is fixed at construction.
type OwnershipMode int

const (
	// HostOwned controllers live inside a surface created by the host page.
	HostOwned OwnershipMode = iota
	// SelfOwned controllers create and exclusively own their surface.
	SelfOwned
)

func (m OwnershipMode) String() string {
	switch m {
	case HostOwned:
		return "host-owned"
	case SelfOwned:
		return "self-owned"
	default:
		return fmt.Sprintf("OwnershipMode(%d)", int(m))
	}
}

// Size is the enumerated size token of a modal.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
	SizeXLarge Size = "xl"
)

// DefaultSize is used when no size attribute is given.
const DefaultSize = SizeLarge

// ParseSize parses a size token. Long names ("small", "large", ...) are accepted.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sm", "small":
		return SizeSmall, nil
	case "md", "medium":
		return SizeMedium, nil
	case "", "lg", "large":
		return SizeLarge, nil
	case "xl", "xlarge", "x-large":
		return SizeXLarge, nil
	}
	return "", fmt.Errorf("unknown modal size %q (want sm, md, lg or xl)", s)
}

// Width returns the preferred frame width in cells.
// xl is one and a half times lg.
func (s Size) Width() int {
	switch s {
	case SizeSmall:
		return 40
	case SizeMedium:
		return 60
	case SizeXLarge:
		return 120
	default:
		return 80
	}
}

// ClosedBy controls which user actions may dismiss a surface on their own.
type ClosedBy string

const (
	// ClosedByAny allows Esc and backdrop clicks.
	ClosedByAny ClosedBy = "any"
	// ClosedByCloseRequest allows Esc only.
	ClosedByCloseRequest ClosedBy = "closerequest"
	// ClosedByNone only closes through explicit calls.
	ClosedByNone ClosedBy = "none"
)

// ParseClosedBy parses a closedby policy.
func ParseClosedBy(s string) (ClosedBy, error) {
	switch v := ClosedBy(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ClosedByAny, nil
	case ClosedByAny, ClosedByCloseRequest, ClosedByNone:
		return v, nil
	}
	return "", fmt.Errorf("unknown closedby policy %q (want any, closerequest or none)", s)
}
