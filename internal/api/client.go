package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the game service's JSON endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// doJSONRequest posts body to path and decodes the response into out.
func (c *Client) doJSONRequest(path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("api: encode request: %w", err)
	}

	res, err := c.client.Post(c.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("api: %s: %w", path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("api: %s: unexpected status %d", path, res.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// NewGame resets the session and returns the opening snapshot.
func (c *Client) NewGame(gameID, humanColor string) (*GameResponse, error) {
	req := map[string]string{"game_id": gameID, "human_color": humanColor}
	var resp GameResponse
	if err := c.doJSONRequest("/api/new_game", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectedError{Reason: resp.Error}
	}
	return &resp, nil
}

// LegalMoves returns the destination squares for the piece on from.
func (c *Client) LegalMoves(gameID, from string) ([]string, error) {
	req := map[string]string{"game_id": gameID, "from": from}
	var resp legalMovesResponse
	if err := c.doJSONRequest("/api/legal_moves", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectedError{Reason: resp.Error}
	}
	return resp.LegalMoves, nil
}

// Move submits a move and returns the post-move snapshot, including any
// computer reply the service played.
func (c *Client) Move(gameID, from, to string) (*GameResponse, error) {
	req := map[string]string{"game_id": gameID, "from": from, "to": to}
	var resp GameResponse
	if err := c.doJSONRequest("/api/move", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &RejectedError{Reason: resp.Error}
	}
	return &resp, nil
}
