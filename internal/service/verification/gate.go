package verification

import (
	"context"
	"sync"
	"time"
)

// State names the phases a verification attempt moves through.
type State string

const (
	StateIdle               State = "idle"
	StateChallengeRequested State = "challenge_requested"
	StateTokenReceived      State = "token_received"
	StateServerValidated    State = "server_validated"
	StatePassed             State = "passed"
	StateFailed             State = "failed"
	StateDisabled           State = "disabled"
)

// FailReason explains a failed verification attempt.
type FailReason string

const (
	ReasonChallengeTimeout FailReason = "challenge_timeout"
	ReasonServerRejected   FailReason = "server_rejected"
	ReasonLowScore         FailReason = "low_score"
)

// Outcome is the validator's verdict on one token.
type Outcome struct {
	Passed bool
	Reason FailReason
	Score  float64
}

// Result is what a finished challenge reports back to the caller.
type Result struct {
	Passed bool
	Reason FailReason
	Score  float64
}

// Gate runs one verification challenge at a time. Begin opens the
// challenge and blocks until a token is supplied, the challenge times
// out, or the context is cancelled. Tokens arrive asynchronously via
// SupplyToken; each challenge consumes exactly one.
//
// A disabled gate (no verification configured) passes every challenge
// immediately so registration keeps working without the check.
type Gate struct {
	validator        Validator
	challengeTimeout time.Duration
	log              Logger
	enabled          bool

	mu      sync.Mutex
	state   State
	tokenCh chan string
}

func NewGate(validator Validator, challengeTimeout time.Duration, enabled bool, log Logger) *Gate {
	state := StateIdle
	if !enabled {
		state = StateDisabled
	}

	return &Gate{
		validator:        validator,
		challengeTimeout: challengeTimeout,
		log:              log,
		enabled:          enabled,
		state:            state,
	}
}

// State reports the current phase. Useful for diagnostics and tests.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Begin opens a challenge and blocks until it resolves. Only one
// challenge may be in flight per gate; a second Begin before Reset
// returns ErrChallengeInFlight.
func (g *Gate) Begin(ctx context.Context) (Result, error) {
	g.mu.Lock()
	if !g.enabled {
		g.mu.Unlock()
		return Result{Passed: true}, nil
	}
	if g.state != StateIdle {
		g.mu.Unlock()
		return Result{}, ErrChallengeInFlight
	}
	g.state = StateChallengeRequested
	g.tokenCh = make(chan string, 1)
	tokenCh := g.tokenCh
	g.mu.Unlock()

	timer := time.NewTimer(g.challengeTimeout)
	defer timer.Stop()

	select {
	case token := <-tokenCh:
		g.setState(StateTokenReceived)
		return g.validate(ctx, token)
	case <-timer.C:
		g.log.Warn("Begin - challenge timed out after %s", g.challengeTimeout)
		g.finish(StateFailed)
		return Result{Passed: false, Reason: ReasonChallengeTimeout}, nil
	case <-ctx.Done():
		g.finish(StateFailed)
		return Result{}, ctx.Err()
	}
}

// Run executes a complete challenge for a token that is already in
// hand, as on a registration submit. The token is supplied the moment
// the challenge opens, so Run never waits on the challenge timeout.
func (g *Gate) Run(ctx context.Context, token string) (Result, error) {
	g.mu.Lock()
	if !g.enabled {
		g.mu.Unlock()
		return Result{Passed: true}, nil
	}
	if g.state != StateIdle {
		g.mu.Unlock()
		return Result{}, ErrChallengeInFlight
	}
	g.state = StateChallengeRequested
	g.tokenCh = make(chan string, 1)
	g.mu.Unlock()

	g.setState(StateTokenReceived)
	return g.validate(ctx, token)
}

// SupplyToken hands the challenge its token. The first token is
// consumed; any further token for the same challenge is rejected.
func (g *Gate) SupplyToken(token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.enabled {
		return ErrGateDisabled
	}
	if g.state != StateChallengeRequested {
		return ErrNoChallengeInFlight
	}

	select {
	case g.tokenCh <- token:
		return nil
	default:
		return ErrTokenAlreadySupplied
	}
}

// Reset returns a finished gate to idle so a new challenge can start.
// A fresh attempt never reuses the previous verdict.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.enabled {
		return
	}
	g.state = StateIdle
	g.tokenCh = nil
}

func (g *Gate) validate(ctx context.Context, token string) (Result, error) {
	outcome, err := g.validator.Validate(ctx, token)
	if err != nil {
		g.log.Error("Begin - server validation failed: %v", err)
		g.finish(StateFailed)
		return Result{Passed: false, Reason: ReasonServerRejected}, nil
	}
	g.setState(StateServerValidated)

	if !outcome.Passed {
		g.finish(StateFailed)
		return Result{Passed: false, Reason: outcome.Reason, Score: outcome.Score}, nil
	}

	g.finish(StatePassed)
	return Result{Passed: true, Score: outcome.Score}, nil
}

func (g *Gate) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

func (g *Gate) finish(s State) {
	g.mu.Lock()
	g.state = s
	g.tokenCh = nil
	g.mu.Unlock()
}
