package usecases

import "github.com/yashwalhekar/adminpanelfrontend/internal/domain"

// EditSession tracks the single editable draft of a screen. At most one
// item is in the editing state at a time; beginning a new edit replaces
// any draft already held.
type EditSession struct {
	active bool
	id     string
	draft  domain.Fields
}

// Begin starts editing the given item from a copy of its fields.
func (e *EditSession) Begin(id string, fields domain.Fields) {
	draft := make(domain.Fields, len(fields))
	for k, v := range fields {
		draft[k] = v
	}
	e.active = true
	e.id = id
	e.draft = draft
}

// Set mutates one draft field. No network call happens here.
func (e *EditSession) Set(name string, value any) {
	if !e.active {
		return
	}
	e.draft[name] = value
}

// Cancel discards the draft without saving.
func (e *EditSession) Cancel() {
	e.active = false
	e.id = ""
	e.draft = nil
}

// Active reports whether a draft is held.
func (e *EditSession) Active() bool { return e.active }

// ID returns the id of the item being edited, empty when idle.
func (e *EditSession) ID() string { return e.id }

// Draft returns a copy of the uncommitted fields.
func (e *EditSession) Draft() domain.Fields {
	if !e.active {
		return nil
	}
	out := make(domain.Fields, len(e.draft))
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}
