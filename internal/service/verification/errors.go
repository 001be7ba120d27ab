package verification

import "errors"

var (
	// ErrChallengeInFlight means Begin was called while a previous
	// challenge for the same gate had not finished or been reset.
	ErrChallengeInFlight = errors.New("verification.gate: challenge already in flight")

	// ErrNoChallengeInFlight means a token arrived while no challenge
	// was waiting for one.
	ErrNoChallengeInFlight = errors.New("verification.gate: no challenge in flight")

	// ErrTokenAlreadySupplied means a second token arrived for a
	// challenge that already consumed one.
	ErrTokenAlreadySupplied = errors.New("verification.gate: token already supplied")

	// ErrGateDisabled marks operations that require an active gate.
	ErrGateDisabled = errors.New("verification.gate: gate is disabled")
)
