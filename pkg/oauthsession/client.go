// Package oauthsession talks to the hosted OAuth session-data service that
// turns a short-lived session id into the signed-in identity.
package oauthsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultURL is the hosted session-data endpoint.
const DefaultURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"

// ErrRejected is returned when the service answers with a non-success status.
var ErrRejected = errors.New("oauth session service rejected the session")

// SessionData is the identity resolved for a session id.
type SessionData struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a Client. Outbound calls carry no timeout; callers bound
// them through the request context.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{url: url, httpClient: &http.Client{}}
}

// Resolve exchanges sessionID for the identity it belongs to.
func (c *Client) Resolve(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oauth session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(body))
	}

	var data SessionData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode oauth session data: %w", err)
	}
	if data.Email == "" || data.SessionToken == "" {
		return nil, fmt.Errorf("%w: response is missing email or session_token", ErrRejected)
	}
	return &data, nil
}
