package blog

import (
	"errors"

	"github.com/Zachkp/portfolio/internal/content"
)

// Phase is the state of a detail view.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFound
	PhaseNotFound
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFound:
		return "found"
	case PhaseNotFound:
		return "not_found"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase no longer changes for the current identifier.
func (p Phase) Terminal() bool {
	return p != PhaseLoading
}

// errMissingID is the Error-phase cause when the view is started without an identifier.
var errMissingID = errors.New("missing article identifier")

// Detail tracks the lookup of one article for a detail view:
// Loading -> Found | NotFound | Error. Starting a different identifier
// restarts at Loading; terminal phases ignore further resolution.
type Detail struct {
	id      string
	phase   Phase
	article content.Article
	err     error
}

// NewDetail returns a Detail already started for id.
func NewDetail(id string) *Detail {
	d := &Detail{}
	d.restart(id)
	return d
}

// Start begins a lookup for id. Re-starting the same identifier keeps the
// current phase.
func (d *Detail) Start(id string) {
	if id == d.id && d.phase.Terminal() {
		return
	}
	d.restart(id)
}

func (d *Detail) restart(id string) {
	d.id = id
	d.phase = PhaseLoading
	d.article = content.Article{}
	d.err = nil
}

// Resolve looks the identifier up in all. It is a no-op unless Loading.
func (d *Detail) Resolve(all []content.Article) {
	if d.phase.Terminal() {
		return
	}
	if d.id == "" {
		d.Fail(errMissingID)
		return
	}
	if a, ok := FindByID(all, d.id); ok {
		d.phase = PhaseFound
		d.article = a
		return
	}
	d.phase = PhaseNotFound
	d.err = ErrNotFound
}

// Fail moves a Loading view to Error with err as the cause.
func (d *Detail) Fail(err error) {
	if d.phase != PhaseLoading {
		return
	}
	if err == nil {
		err = errors.New("unknown error")
	}
	d.phase = PhaseError
	d.err = err
}

// ID returns the identifier being viewed.
func (d *Detail) ID() string { return d.id }

// Phase returns the current phase.
func (d *Detail) Phase() Phase { return d.phase }

// Article returns the resolved article; ok is false unless the phase is Found.
func (d *Detail) Article() (content.Article, bool) {
	return d.article, d.phase == PhaseFound
}

// Err returns ErrNotFound for NotFound, the failure cause for Error, else nil.
func (d *Detail) Err() error { return d.err }

// Message is the user-facing text for NotFound and Error phases.
func (d *Detail) Message() string {
	switch d.phase {
	case PhaseNotFound:
		return "Article not found"
	case PhaseError:
		return "Something went wrong loading this article: " + d.err.Error()
	default:
		return ""
	}
}
