package modal

// Presenter produces the content shown inside an open modal.
type Presenter interface {
	Content() string
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func() string

// Content implements Presenter.
func (f PresenterFunc) Content() string { return f() }

// Gate decides whether content exists at all. The presenter is captured once
// at construction; a closed modal renders nothing and never calls it.
type Gate struct {
	presenter Presenter
	open      func() bool
}

// NewGate binds p to the open predicate.
func NewGate(p Presenter, open func() bool) *Gate {
	return &Gate{presenter: p, open: open}
}

// Render returns the presenter's content while open and "" otherwise.
func (g *Gate) Render() string {
	if g.presenter == nil || !g.open() {
		return ""
	}
	return g.presenter.Content()
}

// Presenter returns the captured presenter.
func (g *Gate) Presenter() Presenter {
	return g.presenter
}
