package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger is the logging interface expected by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client calls the challenge provider's siteverify endpoint.
type Client struct {
	verifyURL  string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a siteverify client. The timeout bounds the whole
// verification round-trip.
func NewClient(verifyURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Verify submits the token under the given secret key and returns the
// provider's verdict. A provider-side rejection (success=false) is NOT an
// error: the result carries the error codes and the caller decides.
func (c *Client) Verify(ctx context.Context, secretKey, token string) (*VerifyResult, error) {
	form := url.Values{
		"secret":   {secretKey},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result VerifyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Success {
		c.log.Warn("Verify: provider rejected token: codes=%v", result.ErrorCodes)
	} else {
		c.log.Info("Verify: token accepted, score=%.2f", result.EffectiveScore())
	}

	return &result, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
