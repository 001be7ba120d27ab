package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	outcome Outcome
	err     error
	tokens  []string
}

func (v *fakeValidator) Validate(_ context.Context, token string) (Outcome, error) {
	v.tokens = append(v.tokens, token)
	if v.err != nil {
		return Outcome{}, v.err
	}
	return v.outcome, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func runChallenge(t *testing.T, g *Gate) (<-chan Result, <-chan error) {
	t.Helper()

	resultCh := make(chan Result, 1)
	errCh := make(chan error, 1)
	go func() {
		res, err := g.Begin(context.Background())
		resultCh <- res
		errCh <- err
	}()

	// Wait for Begin to open the challenge.
	require.Eventually(t, func() bool {
		return g.State() == StateChallengeRequested
	}, time.Second, time.Millisecond)

	return resultCh, errCh
}

func TestGate_PassesValidToken(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: true, Score: 0.9}}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	resultCh, errCh := runChallenge(t, gate)

	require.NoError(t, gate.SupplyToken("tok-1"))

	res := <-resultCh
	require.NoError(t, <-errCh)
	assert.True(t, res.Passed)
	assert.Equal(t, 0.9, res.Score)
	assert.Equal(t, StatePassed, gate.State())
	assert.Equal(t, []string{"tok-1"}, validator.tokens)
}

func TestGate_FailsOnServerRejection(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: false, Reason: ReasonServerRejected}}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	resultCh, errCh := runChallenge(t, gate)

	require.NoError(t, gate.SupplyToken("tok-bad"))

	res := <-resultCh
	require.NoError(t, <-errCh)
	assert.False(t, res.Passed)
	assert.Equal(t, ReasonServerRejected, res.Reason)
	assert.Equal(t, StateFailed, gate.State())
}

func TestGate_FailsOnLowScore(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: false, Reason: ReasonLowScore, Score: 0.2}}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	resultCh, errCh := runChallenge(t, gate)

	require.NoError(t, gate.SupplyToken("tok-low"))

	res := <-resultCh
	require.NoError(t, <-errCh)
	assert.False(t, res.Passed)
	assert.Equal(t, ReasonLowScore, res.Reason)
	assert.Equal(t, 0.2, res.Score)
}

func TestGate_ValidatorErrorMapsToRejection(t *testing.T) {
	validator := &fakeValidator{err: errors.New("siteverify unreachable")}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	resultCh, errCh := runChallenge(t, gate)

	require.NoError(t, gate.SupplyToken("tok-1"))

	res := <-resultCh
	require.NoError(t, <-errCh, "infrastructure failure must surface as a failed verdict, not an error")
	assert.False(t, res.Passed)
	assert.Equal(t, ReasonServerRejected, res.Reason)
}

func TestGate_ChallengeTimeout(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: true}}
	gate := NewGate(validator, 30*time.Millisecond, true, nopLogger{})

	resultCh, errCh := runChallenge(t, gate)

	res := <-resultCh
	require.NoError(t, <-errCh)
	assert.False(t, res.Passed)
	assert.Equal(t, ReasonChallengeTimeout, res.Reason)
	assert.Empty(t, validator.tokens, "an expired challenge never reaches the validator")

	// A token arriving after the deadline is rejected.
	assert.ErrorIs(t, gate.SupplyToken("tok-late"), ErrNoChallengeInFlight)
}

func TestGate_TokenIsOneShot(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: true}}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	_, _ = runChallenge(t, gate)

	require.NoError(t, gate.SupplyToken("tok-1"))
	err := gate.SupplyToken("tok-2")
	if err != nil {
		assert.True(t,
			errors.Is(err, ErrTokenAlreadySupplied) || errors.Is(err, ErrNoChallengeInFlight),
			"second token must be rejected, got: %v", err)
	}
}

func TestGate_SingleChallengeInFlight(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: true}}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	_, _ = runChallenge(t, gate)

	_, err := gate.Begin(context.Background())
	assert.ErrorIs(t, err, ErrChallengeInFlight)

	require.NoError(t, gate.SupplyToken("tok-1"))
}

func TestGate_ResetDiscardsPreviousVerdict(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: true, Score: 0.9}}
	gate := NewGate(validator, time.Second, true, nopLogger{})

	resultCh, errCh := runChallenge(t, gate)
	require.NoError(t, gate.SupplyToken("tok-1"))
	res := <-resultCh
	require.NoError(t, <-errCh)
	require.True(t, res.Passed)

	gate.Reset()
	assert.Equal(t, StateIdle, gate.State())

	// The next attempt runs a fresh challenge instead of reusing the verdict.
	resultCh, errCh = runChallenge(t, gate)
	require.NoError(t, gate.SupplyToken("tok-2"))
	res = <-resultCh
	require.NoError(t, <-errCh)
	assert.True(t, res.Passed)
	assert.Equal(t, []string{"tok-1", "tok-2"}, validator.tokens)
}

func TestGate_DisabledPassesImmediately(t *testing.T) {
	gate := NewGate(nil, time.Second, false, nopLogger{})
	assert.Equal(t, StateDisabled, gate.State())

	res, err := gate.Begin(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Passed)

	assert.ErrorIs(t, gate.SupplyToken("tok"), ErrGateDisabled)
}

func TestGate_ContextCancellation(t *testing.T) {
	validator := &fakeValidator{outcome: Outcome{Passed: true}}
	gate := NewGate(validator, time.Minute, true, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())

	resultCh := make(chan error, 1)
	go func() {
		_, err := gate.Begin(ctx)
		resultCh <- err
	}()

	require.Eventually(t, func() bool {
		return gate.State() == StateChallengeRequested
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-resultCh, context.Canceled)
}
