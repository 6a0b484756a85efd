package rulebook

import (
	"errors"
	"fmt"
)

// Errors returned when a character selection does not match the rulebook
var (
	ErrUnknownRace  = errors.New("unknown race")
	ErrUnknownClass = errors.New("unknown class")
)

// Attributes is the six-value attribute vector every character carries
type Attributes struct {
	Strength     int `json:"STR"`
	Dexterity    int `json:"DEX"`
	Intelligence int `json:"INT"`
	Wisdom       int `json:"WIS"`
	Constitution int `json:"CON"`
	Charisma     int `json:"CHA"`
}

// Race holds the base attribute vector and starting equipment for one race
type Race struct {
	Name   string     `json:"name"`
	Base   Attributes `json:"base"`
	Weapon string     `json:"weapon"`
	Armor  string     `json:"armor"`
}

// Class designates the single attribute that receives the class bonus
type Class struct {
	Name  string `json:"name"`
	Bonus string `json:"bonus"` // attribute key: STR, DEX, INT, WIS, CON or CHA
}

// ClassBonus is the flat bonus applied to a class's designated attribute
const ClassBonus = 5

var races = map[string]Race{
	"Dwarf":      {Name: "Dwarf", Base: Attributes{16, 12, 10, 14, 18, 8}, Weapon: "Warhammer", Armor: "Steel Plate"},
	"Elf":        {Name: "Elf", Base: Attributes{10, 18, 16, 14, 12, 12}, Weapon: "Longbow", Armor: "Leather Armor"},
	"Human":      {Name: "Human", Base: Attributes{14, 14, 14, 12, 14, 16}, Weapon: "Sword", Armor: "Chainmail"},
	"Dragonborn": {Name: "Dragonborn", Base: Attributes{18, 14, 10, 12, 16, 14}, Weapon: "Greatsword", Armor: "Dragonhide"},
	"Gnome":      {Name: "Gnome", Base: Attributes{8, 16, 18, 14, 12, 10}, Weapon: "Dagger", Armor: "Robes"},
	"Half-Orc":   {Name: "Half-Orc", Base: Attributes{18, 12, 8, 10, 16, 10}, Weapon: "Axe", Armor: "Hide Armor"},
}

var classes = map[string]Class{
	"Knight":  {Name: "Knight", Bonus: "STR"},
	"Mage":    {Name: "Mage", Bonus: "INT"},
	"Archer":  {Name: "Archer", Bonus: "DEX"},
	"Tank":    {Name: "Tank", Bonus: "CON"},
	"Charmer": {Name: "Charmer", Bonus: "CHA"},
	"Monk":    {Name: "Monk", Bonus: "WIS"},
}

// Profile is the derived character sheet for a race/class pair
type Profile struct {
	Attributes Attributes `json:"attributes"`
	Weapon     string     `json:"weapon"`
	Armor      string     `json:"armor"`
	MaxHealth  int        `json:"max_health"`
}

// Resolve derives the character profile for a race/class pair. It is pure:
// the same selection always yields the same profile, and nothing is persisted
// or fetched here, so invalid selections are caught before any store is touched.
func Resolve(race, class string) (Profile, error) {
	r, ok := races[race]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownRace, race)
	}

	c, ok := classes[class]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}

	attrs := r.Base
	switch c.Bonus {
	case "STR":
		attrs.Strength += ClassBonus
	case "DEX":
		attrs.Dexterity += ClassBonus
	case "INT":
		attrs.Intelligence += ClassBonus
	case "WIS":
		attrs.Wisdom += ClassBonus
	case "CON":
		attrs.Constitution += ClassBonus
	case "CHA":
		attrs.Charisma += ClassBonus
	}

	return Profile{
		Attributes: attrs,
		Weapon:     r.Weapon,
		Armor:      r.Armor,
		MaxHealth:  MaxHealth(attrs.Constitution),
	}, nil
}

// MaxHealth computes maximum health from a (post-bonus) constitution score
func MaxHealth(constitution int) int {
	return 100 + (constitution-10)*5
}

// Races returns the names of all playable races
func Races() []string {
	names := make([]string, 0, len(races))
	for name := range races {
		names = append(names, name)
	}
	return names
}

// Classes returns the names of all playable classes
func Classes() []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	return names
}
