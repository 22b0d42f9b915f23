// Package controller implements the per-screen CRUD state machine every
// dashboard resource shares: a paginated, searchable list plus a
// create/edit form and a confirmed delete. It is written once and
// instantiated per entity type; the rendering surface stays external and
// drives it through intent methods.
package controller

import (
	"context"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// Entity is any record with a store-assigned id.
type Entity interface {
	PrimaryKey() uint
}

// State is the screen's position in its lifecycle. The screen is
// long-lived: there is no terminal state.
type State int

const (
	StateIdle State = iota
	StateCreating
	StateEditing
	StateSubmitting
	StateConfirmingDelete
)

// Mode says whether a submit creates or updates, as an explicit variant
// fixed at BeginCreate/BeginEdit time. It is never inferred from the
// shape of the form values.
type Mode struct {
	edit bool
	id   uint
}

func ModeCreate() Mode { return Mode{} }

func ModeEdit(id uint) Mode { return Mode{edit: true, id: id} }

// Edit returns the target id and true when the mode is an update.
func (m Mode) Edit() (uint, bool) { return m.id, m.edit }

// Outcome is the settled result of a mutation. Mutations never panic or
// propagate store errors to the surface; they settle one way or the other.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	// OutcomeRejected means the intent was ignored: another mutation was
	// in flight or the screen was not in a state that allows it.
	OutcomeRejected
)

// Notifier receives the exactly-one user-visible notification each
// settled mutation produces.
type Notifier interface {
	Success(title, message string)
	Error(message string)
}

// Messages holds the resource-specific notification texts.
type Messages struct {
	Created string
	Updated string
	Deleted string
	Failed  string
}

// Controller owns the filter, form and page state of one resource screen
// and mediates every intent into store calls. It is not safe for
// concurrent use: a screen is a single logical thread of control.
type Controller[T Entity] struct {
	store    storage.Store[T]
	notifier Notifier
	msgs     Messages

	state         State
	mode          Mode
	filter        models.Filter
	form          T
	page          *models.Page[T]
	pendingDelete uint
	inFlight      bool
}

func New[T Entity](store storage.Store[T], notifier Notifier, msgs Messages) *Controller[T] {
	return &Controller[T]{
		store:    store,
		notifier: notifier,
		msgs:     msgs,
		filter:   models.Filter{Page: models.DefaultPage, Limit: models.DefaultLimit},
	}
}

func (c *Controller[T]) State() State          { return c.state }
func (c *Controller[T]) Mode() Mode            { return c.mode }
func (c *Controller[T]) Filter() models.Filter { return c.filter }
func (c *Controller[T]) Form() T               { return c.form }

// Page returns the most recent list result, or nil when no successful
// list has completed since the last failure.
func (c *Controller[T]) Page() *models.Page[T] { return c.page }

// SetFilter replaces the filter state. The next List call uses it.
func (c *Controller[T]) SetFilter(f models.Filter) {
	c.filter = f.Normalized()
}

// List fetches the current page from the store. A failed read clears the
// held page so the surface shows an explicit error state instead of
// stale rows.
func (c *Controller[T]) List(ctx context.Context) error {
	page, err := c.store.FindPage(ctx, c.filter)
	if err != nil {
		c.page = nil
		return err
	}
	c.page = page
	return nil
}

// BeginCreate opens the form empty in create mode.
func (c *Controller[T]) BeginCreate() {
	if c.state != StateIdle {
		return
	}
	var zero T
	c.form = zero
	c.mode = ModeCreate()
	c.state = StateCreating
}

// BeginEdit opens the form populated from the selected row. The update
// target id is captured here, in the mode, once.
func (c *Controller[T]) BeginEdit(entity T) {
	if c.state != StateIdle {
		return
	}
	c.form = entity
	c.mode = ModeEdit(entity.PrimaryKey())
	c.state = StateEditing
}

// SetForm replaces the form values with the surface's current input.
func (c *Controller[T]) SetForm(values T) {
	c.form = values
}

// Cancel closes the form or the delete confirmation without touching
// the store.
func (c *Controller[T]) Cancel() {
	if c.state == StateSubmitting {
		return
	}
	c.reset()
}

// Submit settles the open form: create or update per the mode. Success
// closes the form, clears it, refreshes the list and notifies once.
// Failure notifies once and keeps the form open with its values intact
// so the user can retry.
func (c *Controller[T]) Submit(ctx context.Context) Outcome {
	if c.state != StateCreating && c.state != StateEditing {
		return OutcomeRejected
	}
	retry := c.state

	if id, edit := c.mode.Edit(); edit {
		return c.settle(ctx, retry, c.msgs.Updated, func(ctx context.Context) error {
			_, err := c.store.Update(ctx, id, &c.form)
			return err
		})
	}
	return c.settle(ctx, retry, c.msgs.Created, func(ctx context.Context) error {
		return c.store.Create(ctx, &c.form)
	})
}

// RequestRemove asks for confirmation before a delete. No store call is
// made until ConfirmRemove.
func (c *Controller[T]) RequestRemove(id uint) {
	if c.state != StateIdle {
		return
	}
	c.pendingDelete = id
	c.state = StateConfirmingDelete
}

// CancelRemove abandons the pending delete with zero store calls.
func (c *Controller[T]) CancelRemove() {
	if c.state != StateConfirmingDelete {
		return
	}
	c.reset()
}

// ConfirmRemove issues the delete that RequestRemove staged. The record
// is assumed still present until the store confirms otherwise.
func (c *Controller[T]) ConfirmRemove(ctx context.Context) Outcome {
	if c.state != StateConfirmingDelete {
		return OutcomeRejected
	}
	id := c.pendingDelete
	return c.settle(ctx, StateConfirmingDelete, c.msgs.Deleted, func(ctx context.Context) error {
		_, err := c.store.Delete(ctx, id)
		return err
	})
}

// settle runs one mutation and applies the shared on-settle behavior:
// exactly one notification, then either close-and-refresh or restore the
// pre-submit state for retry.
func (c *Controller[T]) settle(ctx context.Context, retry State, success string, op func(context.Context) error) Outcome {
	if c.inFlight {
		return OutcomeRejected
	}
	c.inFlight = true
	defer func() { c.inFlight = false }()

	c.state = StateSubmitting
	if err := op(ctx); err != nil {
		c.notifier.Error(c.msgs.Failed)
		c.state = retry
		return OutcomeFailure
	}

	c.notifier.Success(success, "")
	c.reset()
	_ = c.List(ctx) // a failed refresh already leaves the explicit empty state
	return OutcomeSuccess
}

func (c *Controller[T]) reset() {
	var zero T
	c.form = zero
	c.mode = ModeCreate()
	c.pendingDelete = 0
	c.state = StateIdle
}
