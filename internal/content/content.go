// Package content holds the presenters shown inside modals and the
// collaborators they load data from: label/value providers, branding, and
// submitters for structured input.
package content

import (
	"AdminDeck/internal/modal"
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Entry is one label/value row.
type Entry struct {
	Label string
	Value string
}

// Provider loads entries. It must honor ctx cancellation.
type Provider func(ctx context.Context) ([]Entry, error)

// ResultMsg carries a provider result back to the presenter that asked for
// it. Generation identifies the request; results whose generation is no
// longer current are stale.
type ResultMsg struct {
	Key        string
	Generation uint64
	Entries    []Entry
	Err        error
}

// Fetch runs p as a command. Provider errors and panics are converted into
// *modal.ContentError so they can be rendered inline.
func Fetch(ctx context.Context, key string, gen uint64, source string, p Provider) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = ResultMsg{
					Key:        key,
					Generation: gen,
					Err:        &modal.ContentError{Source: source, Err: fmt.Errorf("%v", r), Panic: true},
				}
			}
		}()
		entries, err := p(ctx)
		if err != nil {
			return ResultMsg{Key: key, Generation: gen, Err: &modal.ContentError{Source: source, Err: err}}
		}
		return ResultMsg{Key: key, Generation: gen, Entries: entries}
	}
}

// Brand is the product branding shown in the about panel.
type Brand struct {
	Title    string
	Icon     string
	Licensed bool
}

// Product returns the product name, with an Enterprise suffix for licensed
// installs.
func (b Brand) Product() string {
	title := b.Title
	if title == "" {
		title = "AdminDeck"
	}
	if b.Licensed {
		title += " Enterprise"
	}
	return title
}

// Heading is Product prefixed by the icon, if any.
func (b Brand) Heading() string {
	if b.Icon == "" {
		return b.Product()
	}
	return b.Icon + " " + b.Product()
}
