package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps calls to the game master backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// CreateCharacter creates a new character from a race/class selection
func (c *Client) CreateCharacter(ctx context.Context, req CreateCharacterRequest) (*CreateCharacterResponse, error) {
	var out CreateCharacterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/create_character", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession opens a game session for an existing character
func (c *Client) CreateSession(ctx context.Context, characterID uint) (*CreateSessionResponse, error) {
	var out CreateSessionResponse
	req := CreateSessionRequest{CharacterID: characterID}
	if err := c.doJSON(ctx, http.MethodPost, "/create_session", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GameAction sends a player action and returns the game master's reply
func (c *Client) GameAction(ctx context.Context, sessionID, prompt string) (*GameActionResponse, error) {
	var out GameActionResponse
	req := GameActionRequest{SessionID: sessionID, Prompt: prompt}
	if err := c.doJSON(ctx, http.MethodPost, "/game_action", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCharacter fetches a character record by id
func (c *Client) GetCharacter(ctx context.Context, id uint) (*Character, error) {
	var out Character
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/character/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON is a helper to perform JSON requests against the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
