package scan

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTransition = errors.New("invalid attempt transition")

// State del intento de escaneo.
// Idle -> Requested -> Succeeded | Failed. Idle -> Failed si el request no se pudo armar.
type State string

const (
	StateIdle      State = "idle"
	StateRequested State = "requested"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// Attempt es una ejecución de escaneo. No se reutiliza: un reintento es un Attempt nuevo.
type Attempt struct {
	ID          string
	State       State
	Result      *IngredientClassification
	Err         error
	Failure     FailureKind
	StartedAt   time.Time
	RequestedAt time.Time
	FinishedAt  time.Time
}

func NewAttempt(id string, now time.Time) *Attempt {
	return &Attempt{ID: id, State: StateIdle, StartedAt: now}
}

func (a *Attempt) MarkRequested(now time.Time) error {
	if a.State != StateIdle {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.State, StateRequested)
	}
	a.State = StateRequested
	a.RequestedAt = now
	return nil
}

func (a *Attempt) Succeed(res IngredientClassification, now time.Time) error {
	if a.State != StateRequested {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.State, StateSucceeded)
	}
	a.State = StateSucceeded
	a.Result = &res
	a.FinishedAt = now
	return nil
}

func (a *Attempt) Fail(err error, now time.Time) error {
	if a.State.Terminal() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.State, StateFailed)
	}
	a.State = StateFailed
	a.Err = err
	a.Failure = KindOf(err)
	a.FinishedAt = now
	return nil
}

// Duration desde el inicio hasta el estado terminal (0 si no terminó).
func (a *Attempt) Duration() time.Duration {
	if a.FinishedAt.IsZero() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}
