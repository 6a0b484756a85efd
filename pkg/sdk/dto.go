package sdk

import (
	"time"

	"github.com/hearthfire/gamemaster/pkg/rulebook"
)

/** Requests */

// CreateCharacterRequest is the body for POST /create_character
type CreateCharacterRequest struct {
	Name           string `json:"name" binding:"required"`
	Race           string `json:"race" binding:"required"`
	CharacterClass string `json:"character_class" binding:"required"`
}

// CreateSessionRequest is the body for POST /create_session
type CreateSessionRequest struct {
	CharacterID uint `json:"character_id" binding:"required"`
}

// GameActionRequest is the body for POST /game_action
type GameActionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Prompt    string `json:"prompt" binding:"required"`
}

/** Responses */

// CreateCharacterResponse returns the derived sheet for a new character
type CreateCharacterResponse struct {
	Success     bool                `json:"success"`
	CharacterID uint                `json:"character_id"`
	Stats       rulebook.Attributes `json:"stats"`
	MaxHealth   int                 `json:"max_health"`
	Weapon      string              `json:"weapon"`
	Armor       string              `json:"armor"`
}

// Character is the full character record returned by the API
type Character struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Race         string    `json:"race"`
	Class        string    `json:"class"`
	Strength     int       `json:"strength"`
	Dexterity    int       `json:"dexterity"`
	Intelligence int       `json:"intelligence"`
	Wisdom       int       `json:"wisdom"`
	Constitution int       `json:"constitution"`
	Charisma     int       `json:"charisma"`
	Weapon       string    `json:"weapon"`
	Armor        string    `json:"armor"`
	Health       int       `json:"health"`
	MaxHealth    int       `json:"max_health"`
	Money        int       `json:"money"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSessionResponse returns the new session handle and opening scene
type CreateSessionResponse struct {
	Success        bool      `json:"success"`
	SessionID      string    `json:"session_id"`
	Character      Character `json:"character"`
	InitialMessage string    `json:"initial_message"`
}

// GameActionResponse returns the game master's reply to a player action
type GameActionResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// ErrorResponse is the structured failure body returned for every error
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
