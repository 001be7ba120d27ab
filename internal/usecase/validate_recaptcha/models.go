package validate_recaptcha

// UserInfo identifies the registrant the token was issued for. It is
// logged alongside the verdict; validation itself only needs the token.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Request carries the client token to verify.
type Request struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"userInfo"`
}

// Response is the verification verdict. Score is present only when the
// siteverify endpoint reported one (v3 keys); Details carries the
// provider's error-codes on a rejection.
type Response struct {
	Success bool     `json:"success"`
	Score   *float64 `json:"score,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Rejection messages reported in Response.Error.
const (
	ErrMsgServerRejected = "ReCaptcha validation failed"
	ErrMsgLowScore       = "Security check failed"
)
