package session

import (
	"time"

	"github.com/hearthfire/gamemaster/internal/stores/character"
)

// GameSession is one persisted game session: an unguessable external token,
// a reference to the character playing it, and the serialized transcript.
// The transcript column holds the JSON array of {role, content} records.
type GameSession struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	SessionID   string              `json:"session_id" gorm:"size:100;uniqueIndex;not null"`
	CharacterID uint                `json:"character_id" gorm:"not null;index"`
	Character   character.Character `json:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	ChatHistory string              `json:"chat_history" gorm:"type:text"`
	LastUpdated time.Time           `json:"last_updated" gorm:"autoUpdateTime"`
	CreatedAt   time.Time           `json:"created_at"`
}

// TableName keeps the original table name
func (GameSession) TableName() string { return "game_sessions" }
