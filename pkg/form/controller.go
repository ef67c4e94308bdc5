// Package form drives one site form through a single submission: field
// editing, one POST, and presentation of the outcome.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"site-mailer/pkg/models"
)

// State is the single source of truth for what the form is showing.
type State int

const (
	// StateEditing accepts field changes and a submit.
	StateEditing State = iota
	// StateSubmitting has one request outstanding; submit is disabled.
	StateSubmitting
	// StateSuccess shows the confirmation view until the reset delay passes.
	StateSuccess
	// StateError shows the error banner. Fields are intact and editable,
	// and a new submit is allowed.
	StateError
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	// FallbackError is shown when the server gave no usable error text.
	FallbackError = "Failed to submit. Please try again."
	// DefaultResetDelay is how long the confirmation view stays up.
	DefaultResetDelay = 3000 * time.Millisecond
)

var (
	ErrBusy        = errors.New("form: a submission is already in progress")
	ErrNotEditable = errors.New("form: fields are locked in the current state")
	ErrDismissed   = errors.New("form: dismissed before the response arrived")
)

// MissingFieldsError is returned by Submit when required fields are empty.
// No request is made.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "form: required fields are empty: " + strings.Join(e.Fields, ", ")
}

// Snapshot is a copy of the controller's observable state.
type Snapshot struct {
	State   State
	Fields  models.SubmissionRequest
	Message string
	Error   string
}

// Option configures a Controller.
type Option func(*Controller)

// WithResetDelay sets how long StateSuccess lasts. Zero disables the
// automatic return to editing; Dismiss is then the only way back.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) { c.resetDelay = d }
}

// OnChange registers a callback invoked after every transition. It is
// called without the controller lock held.
func OnChange(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// OnDismiss registers a callback for the automatic reset after success,
// used to close a hosting overlay.
func OnDismiss(fn func()) Option {
	return func(c *Controller) { c.onDismiss = fn }
}

// Controller holds the field values of one form instance.
type Controller struct {
	client  Client
	variant models.Variant

	resetDelay time.Duration
	onChange   func(Snapshot)
	onDismiss  func()

	mu      sync.Mutex
	fields  models.SubmissionRequest
	state   State
	message string
	errMsg  string
	timer   *time.Timer
	// generation invalidates in-flight responses and pending resets after Dismiss.
	generation uint64
}

// NewController creates a controller in StateEditing with empty fields.
func NewController(client Client, variant models.Variant, opts ...Option) *Controller {
	c := &Controller{
		client:     client,
		variant:    variant,
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{State: c.state, Fields: c.fields, Message: c.message, Error: c.errMsg}
}

func (c *Controller) notify(s Snapshot) {
	if c.onChange != nil {
		c.onChange(s)
	}
}

// SetField updates one field in place.
func (c *Controller) SetField(name, value string) error {
	if !c.variant.HasField(name) {
		return fmt.Errorf("form: %s has no field %q", c.variant.Key, name)
	}

	c.mu.Lock()
	if c.state == StateSubmitting || c.state == StateSuccess {
		c.mu.Unlock()
		return ErrNotEditable
	}
	c.fields.SetField(name, value)
	s := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(s)
	return nil
}

// Submit performs exactly one request. It returns an error only when the
// submit was refused or abandoned; the outcome of the exchange itself is
// reported through the resulting Snapshot.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return ErrBusy
	case StateSuccess:
		c.mu.Unlock()
		return ErrNotEditable
	}
	if missing := c.variant.Missing(c.fields); len(missing) > 0 {
		c.mu.Unlock()
		return &MissingFieldsError{Fields: missing}
	}

	c.state = StateSubmitting
	c.errMsg = ""
	c.generation++
	gen := c.generation
	payload := c.fields
	s := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(s)

	result, err := c.client.Submit(ctx, c.variant, payload)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return ErrDismissed
	}
	if err == nil && result.Success {
		c.state = StateSuccess
		c.message = result.Message
		if c.resetDelay > 0 {
			c.timer = time.AfterFunc(c.resetDelay, func() { c.autoReset(gen) })
		}
	} else {
		c.state = StateError
		c.errMsg = FallbackError
		if err == nil && result.Error != "" {
			c.errMsg = result.Error
		}
	}
	s = c.snapshotLocked()
	c.mu.Unlock()

	c.notify(s)
	return nil
}

func (c *Controller) autoReset(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != StateSuccess {
		c.mu.Unlock()
		return
	}
	c.resetLocked()
	s := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(s)
	if c.onDismiss != nil {
		c.onDismiss()
	}
}

// resetLocked clears every field and returns to editing.
func (c *Controller) resetLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.fields = models.SubmissionRequest{}
	c.state = StateEditing
	c.message = ""
	c.errMsg = ""
}

// DismissError hides the error banner, keeping the fields.
func (c *Controller) DismissError() {
	c.mu.Lock()
	if c.state != StateError {
		c.mu.Unlock()
		return
	}
	c.state = StateEditing
	c.errMsg = ""
	s := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(s)
}

// Dismiss abandons the flow from any state. An outstanding request is not
// cancelled; its response is ignored. Fields are cleared only if the
// submission had already succeeded.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	c.generation++
	if c.state == StateSuccess {
		c.resetLocked()
	} else {
		if c.timer != nil {
			c.timer.Stop()
			c.timer = nil
		}
		c.state = StateEditing
		c.message = ""
		c.errMsg = ""
	}
	s := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(s)
}
