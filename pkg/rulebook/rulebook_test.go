package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("dwarf tank", func(t *testing.T) {
		profile, err := Resolve("Dwarf", "Tank")
		require.NoError(t, err)

		assert.Equal(t, 16, profile.Attributes.Strength)
		assert.Equal(t, 12, profile.Attributes.Dexterity)
		assert.Equal(t, 10, profile.Attributes.Intelligence)
		assert.Equal(t, 14, profile.Attributes.Wisdom)
		assert.Equal(t, 23, profile.Attributes.Constitution) // 18 base + 5 Tank bonus
		assert.Equal(t, 8, profile.Attributes.Charisma)
		assert.Equal(t, "Warhammer", profile.Weapon)
		assert.Equal(t, "Steel Plate", profile.Armor)
		assert.Equal(t, 165, profile.MaxHealth) // 100 + (23-10)*5
	})

	t.Run("bonus targets the class attribute only", func(t *testing.T) {
		base, err := Resolve("Human", "Knight")
		require.NoError(t, err)
		assert.Equal(t, 19, base.Attributes.Strength)

		mage, err := Resolve("Human", "Mage")
		require.NoError(t, err)
		assert.Equal(t, 14, mage.Attributes.Strength)
		assert.Equal(t, 19, mage.Attributes.Intelligence)
	})

	t.Run("health uses post-bonus constitution", func(t *testing.T) {
		profile, err := Resolve("Elf", "Tank")
		require.NoError(t, err)
		assert.Equal(t, 17, profile.Attributes.Constitution)
		assert.Equal(t, 135, profile.MaxHealth)
	})

	t.Run("unknown race", func(t *testing.T) {
		_, err := Resolve("Goblin", "Knight")
		assert.ErrorIs(t, err, ErrUnknownRace)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := Resolve("Dwarf", "Bard")
		assert.ErrorIs(t, err, ErrUnknownClass)
	})
}

func TestResolveDeterministic(t *testing.T) {
	// Every race/class pair resolves to the same profile twice in a row
	for _, race := range Races() {
		for _, class := range Classes() {
			first, err := Resolve(race, class)
			require.NoError(t, err)

			second, err := Resolve(race, class)
			require.NoError(t, err)

			assert.Equal(t, first, second, "%s %s", race, class)
			assert.Equal(t, MaxHealth(first.Attributes.Constitution), first.MaxHealth)
		}
	}
}
