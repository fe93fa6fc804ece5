package content

import (
	"AdminDeck/internal/modal"
	"AdminDeck/internal/theme"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
)

// ReturnSubmitted is the surface return value after a successful submission.
const ReturnSubmitted = "submitted"

// ErrReasonRequired is shown when the form is submitted without a reason.
var ErrReasonRequired = errors.New("a reason is required")

// Request is the structured input collected by ReasonForm.
type Request struct {
	Subject string    `yaml:"subject"`
	Reason  string    `yaml:"reason"`
	At      time.Time `yaml:"at"`
}

// Submitter turns a request into a result. Implementations must honor ctx.
type Submitter interface {
	Submit(ctx context.Context, req Request) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, req Request) error

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, req Request) error { return f(ctx, req) }

// SubmitResultMsg reports the outcome of a submission.
type SubmitResultMsg struct {
	Key        string
	Generation uint64
	Err        error
}

var submitKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "submit"),
)

// ReasonForm asks for a free-text reason and submits it. On success it closes
// its surface the way a native form submission does, with ReturnSubmitted
// as the return value; failures stay in the form.
type ReasonForm struct {
	key       string
	subject   string
	prompt    string
	submitter Submitter
	parent    context.Context
	logger    *log.Logger
	tokens    theme.Tokens
	now       func() time.Time

	surface    *modal.Surface
	cancel     context.CancelFunc
	gen        uint64
	active     bool
	submitting bool
	err        error

	input   textinput.Model
	spinner spinner.Model
}

// NewReasonForm creates the form. subject names what the reason is for.
func NewReasonForm(ctx context.Context, key, subject, prompt string, s Submitter, l *log.Logger) *ReasonForm {
	if l == nil {
		l = log.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "Reason"
	ti.CharLimit = 512
	ti.SetWidth(40)
	return &ReasonForm{
		key:       key,
		subject:   subject,
		prompt:    prompt,
		submitter: s,
		parent:    ctx,
		logger:    l,
		tokens:    theme.Default(),
		now:       time.Now,
		input:     ti,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// Title implements modal.Titler.
func (f *ReasonForm) Title() string { return f.subject }

// BindSurface implements modal.SurfaceBinder.
func (f *ReasonForm) BindSurface(s *modal.Surface) { f.surface = s }

// SetTokens implements modal.Styler.
func (f *ReasonForm) SetTokens(t theme.Tokens) { f.tokens = t }

// SetSize implements modal.Sizer.
func (f *ReasonForm) SetSize(width, _ int) {
	if width > 4 {
		f.input.SetWidth(width - 4)
	}
}

// Value returns the current reason text.
func (f *ReasonForm) Value() string { return f.input.Value() }

// Err returns the error shown in the form, if any.
func (f *ReasonForm) Err() error { return f.err }

// Submitting reports whether a submission is in flight.
func (f *ReasonForm) Submitting() bool { return f.submitting }

// Activate resets the form and focuses the input.
func (f *ReasonForm) Activate() tea.Cmd {
	f.active = true
	f.submitting = false
	f.err = nil
	f.input.Reset()
	return f.input.Focus()
}

// Deactivate abandons an in-flight submission.
func (f *ReasonForm) Deactivate() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.gen++
	f.active = false
	f.submitting = false
	f.input.Blur()
}

// Update implements modal.Updater.
func (f *ReasonForm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		if msg.Key != f.key {
			return nil
		}
		if !f.active || msg.Generation != f.gen {
			f.logger.Debug("Discarding stale submission result", "modal", f.key, "generation", msg.Generation)
			return nil
		}
		f.submitting = false
		if msg.Err != nil {
			f.err = msg.Err
			f.logger.Warn("Submission failed", "modal", f.key, "error", msg.Err)
			return nil
		}
		f.logger.Info("Reason submitted", "modal", f.key, "subject", f.subject)
		if f.surface != nil {
			f.surface.Submit(ReturnSubmitted)
		}
		return nil

	case spinner.TickMsg:
		if !f.submitting {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd

	case tea.KeyPressMsg:
		if !f.active || f.submitting {
			return nil
		}
		if key.Matches(msg, submitKey) {
			return f.submit()
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return cmd
	}
	return nil
}

func (f *ReasonForm) submit() tea.Cmd {
	reason := strings.TrimSpace(f.input.Value())
	if reason == "" {
		f.err = ErrReasonRequired
		return nil
	}
	f.err = nil
	f.submitting = true
	f.gen++
	ctx, cancel := context.WithCancel(f.parent)
	f.cancel = cancel
	req := Request{Subject: f.subject, Reason: reason, At: f.now()}
	gen, k, s := f.gen, f.key, f.submitter
	run := func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = SubmitResultMsg{Key: k, Generation: gen, Err: &modal.ContentError{Source: "submit", Err: fmt.Errorf("%v", r), Panic: true}}
			}
		}()
		err := s.Submit(ctx, req)
		if err != nil {
			err = &modal.ContentError{Source: "submit", Err: err}
		}
		return SubmitResultMsg{Key: k, Generation: gen, Err: err}
	}
	return tea.Batch(f.spinner.Tick, run)
}

// Content implements modal.Presenter.
func (f *ReasonForm) Content() string {
	muted := lipgloss.NewStyle().Foreground(theme.Color(f.tokens.Muted))
	danger := lipgloss.NewStyle().Foreground(theme.Color(f.tokens.Danger))

	lines := []string{f.prompt, "", f.input.View()}
	switch {
	case f.submitting:
		lines = append(lines, "", f.spinner.View()+" Submitting…")
	case f.err != nil:
		lines = append(lines, "", danger.Render(f.err.Error()))
	}
	help := submitKey.Help()
	lines = append(lines, "", muted.Render(help.Key+" "+help.Desc+" · esc cancel"))
	return strings.Join(lines, "\n")
}
