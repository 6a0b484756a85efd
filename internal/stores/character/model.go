package character

import (
	"time"

	"github.com/hearthfire/gamemaster/pkg/rulebook"
)

// Starting values for every new character
const (
	StartingMoney = 50
	StartingLevel = 1
)

// Character is the persisted character sheet. The attribute columns hold the
// derived (post-bonus) values: they are computed once by the rulebook at
// creation and never recomputed.
type Character struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:50;not null"`
	Race         string    `json:"race" gorm:"size:20;not null"`
	Class        string    `json:"class" gorm:"size:20;not null"`
	Strength     int       `json:"strength" gorm:"not null"`
	Dexterity    int       `json:"dexterity" gorm:"not null"`
	Intelligence int       `json:"intelligence" gorm:"not null"`
	Wisdom       int       `json:"wisdom" gorm:"not null"`
	Constitution int       `json:"constitution" gorm:"not null"`
	Charisma     int       `json:"charisma" gorm:"not null"`
	Weapon       string    `json:"weapon" gorm:"size:50;not null"`
	Armor        string    `json:"armor" gorm:"size:50;not null"`
	Health       int       `json:"health" gorm:"default:100"`
	MaxHealth    int       `json:"max_health" gorm:"default:100"`
	Money        int       `json:"money" gorm:"default:50"`
	Level        int       `json:"level" gorm:"default:1"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName keeps the original table name
func (Character) TableName() string { return "characters" }

// New builds an unsaved character from a resolved profile
func New(name, race, class string, profile rulebook.Profile) *Character {
	return &Character{
		Name:         name,
		Race:         race,
		Class:        class,
		Strength:     profile.Attributes.Strength,
		Dexterity:    profile.Attributes.Dexterity,
		Intelligence: profile.Attributes.Intelligence,
		Wisdom:       profile.Attributes.Wisdom,
		Constitution: profile.Attributes.Constitution,
		Charisma:     profile.Attributes.Charisma,
		Weapon:       profile.Weapon,
		Armor:        profile.Armor,
		Health:       profile.MaxHealth,
		MaxHealth:    profile.MaxHealth,
		Money:        StartingMoney,
		Level:        StartingLevel,
	}
}

// Attributes returns the stored attribute vector
func (c *Character) Attributes() rulebook.Attributes {
	return rulebook.Attributes{
		Strength:     c.Strength,
		Dexterity:    c.Dexterity,
		Intelligence: c.Intelligence,
		Wisdom:       c.Wisdom,
		Constitution: c.Constitution,
		Charisma:     c.Charisma,
	}
}
