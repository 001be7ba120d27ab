package recaptcha

// VerifyResult is the provider's siteverify answer.
//
// Score is only populated for score-based (v3) challenges; for puzzle-based
// ones the provider omits it and the caller defaults it to 1.
type VerifyResult struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"`
	Action      string   `json:"action,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// EffectiveScore returns the trust score, defaulting to 1 when the
// challenge type does not produce one.
func (r *VerifyResult) EffectiveScore() float64 {
	if r.Score == nil {
		return 1
	}
	return *r.Score
}
