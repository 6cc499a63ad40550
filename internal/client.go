package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the game-master service over its HTTP JSON API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// CreateSession creates a new session on the server
func (c *Client) CreateSession(name string, safety SafetyConfig) (*Session, error) {
	if name == "" {
		name = "session"
	}
	var session Session
	req := CreateSessionRequest{Name: name, Safety: safety}
	if err := c.post("create session", "/api/session", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession fetches a session by id
func (c *Client) GetSession(id string) (*Session, error) {
	var session Session
	if err := c.get("fetch session", "/api/session/"+url.PathEscape(id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateCharacter saves a character into a session. Error payloads are
// returned in the response value so the caller can surface them raw.
func (c *Client) CreateCharacter(req CharacterRequest) (*CharacterResponse, error) {
	var resp CharacterResponse
	if err := c.postRaw("create character", "/api/character", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitTurn sends one player turn to the game master
func (c *Client) SubmitTurn(req TurnRequest) (*TurnResponse, error) {
	var resp TurnResponse
	if err := c.post("submit turn", "/api/gm/turn", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RollDice submits a dice expression for evaluation. A RollResult with
// an Error field set is returned as a value, not a Go error: failed
// evaluation is an ordinary outcome the caller logs.
func (c *Client) RollDice(expression, sessionID string) (*RollResult, error) {
	var result RollResult
	req := RollRequest{Expression: expression, SessionID: sessionID}
	if err := c.postRaw("roll dice", "/api/dice/roll", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(op, path string, out interface{}) error {
	endpoint := c.BaseURL + path
	resp, err := c.HTTPClient.Get(endpoint)
	if err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: err}
	}
	return c.decode(op, endpoint, resp, out, true)
}

func (c *Client) post(op, path string, in, out interface{}) error {
	return c.doPost(op, path, in, out, true)
}

// postRaw decodes without promoting the body's error field to an
// APIError, for endpoints where errors are part of the payload.
func (c *Client) postRaw(op, path string, in, out interface{}) error {
	return c.doPost(op, path, in, out, false)
}

func (c *Client) doPost(op, path string, in, out interface{}, checkError bool) error {
	endpoint := c.BaseURL + path
	body, err := json.Marshal(in)
	if err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: err}
	}
	resp, err := c.HTTPClient.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: err}
	}
	return c.decode(op, endpoint, resp, out, checkError)
}

func (c *Client) decode(op, endpoint string, resp *http.Response, out interface{}, checkError bool) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: err}
	}
	LogDebug("%s: %d bytes from %s (status %d)", op, len(data), endpoint, resp.StatusCode)

	if checkError {
		// Application errors arrive as {"error": "..."} regardless of
		// HTTP status.
		var probe struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &probe); err == nil && probe.Error != "" {
			return &APIError{Op: op, Message: probe.Error}
		}
	}

	if resp.StatusCode >= 500 {
		return &TransportError{Op: op, URL: endpoint,
			Err: fmt.Errorf("server returned status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
