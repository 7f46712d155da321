package wallet

import (
	"context"
	"sync"
)

// Outcome is the state of a collaborator call as seen by a screen.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	}
	return "pending"
}

// Job runs a collaborator call on its own goroutine so Update can poll it
// without blocking a frame. All fields are protected by mu.
type Job[T any] struct {
	mu      sync.Mutex
	outcome Outcome
	result  T
	err     error
	cancel  context.CancelFunc
	done    chan struct{}
}

// Start launches fn in the background.
func Start[T any](parent context.Context, fn func(ctx context.Context) (T, error)) *Job[T] {
	ctx, cancel := context.WithCancel(parent)
	j := &Job[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(j.done)
		defer cancel()

		result, err := fn(ctx)

		j.mu.Lock()
		defer j.mu.Unlock()
		j.result = result
		j.err = err
		if err != nil {
			j.outcome = OutcomeFailure
		} else {
			j.outcome = OutcomeSuccess
		}
	}()

	return j
}

func (j *Job[T]) Outcome() Outcome {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.outcome
}

// Result returns the value and error once the job has settled.
func (j *Job[T]) Result() (T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result, j.err
}

// Cancel asks the call to stop; the job settles as a failure if fn honors ctx.
func (j *Job[T]) Cancel() {
	j.cancel()
}

// Done is closed once the job has settled.
func (j *Job[T]) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job settles.
func (j *Job[T]) Wait() Outcome {
	<-j.done
	return j.Outcome()
}
