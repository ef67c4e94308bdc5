package mailer

import (
	"context"
	"errors"
	"sync"
)

// ErrRecorderFailure is returned by a Recorder told to fail.
var ErrRecorderFailure = errors.New("recorder: simulated send failure")

// Recorder is an in-memory Client for tests. FailOn makes the Nth call
// (1-based) fail after recording the attempt; 0 never fails.
type Recorder struct {
	mu     sync.Mutex
	FailOn int
	Err    error
	Sent   []Message
	calls  int
}

func (r *Recorder) Send(_ context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.FailOn > 0 && r.calls == r.FailOn {
		if r.Err != nil {
			return r.Err
		}
		return ErrRecorderFailure
	}
	r.Sent = append(r.Sent, *msg)
	return nil
}

// Calls reports how many times Send was invoked, including failed calls.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Messages returns a copy of the successfully recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.Sent))
	copy(out, r.Sent)
	return out
}
