package character

import (
	"context"
	"testing"

	"github.com/hearthfire/gamemaster/pkg/rulebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	profile, err := rulebook.Resolve("Gnome", "Mage")
	require.NoError(t, err)

	c := New("Fizzlewick", "Gnome", "Mage", profile)

	assert.Equal(t, 23, c.Intelligence) // 18 base + 5 Mage bonus
	assert.Equal(t, "Dagger", c.Weapon)
	assert.Equal(t, "Robes", c.Armor)
	assert.Equal(t, c.MaxHealth, c.Health)
	assert.Equal(t, StartingMoney, c.Money)
	assert.Equal(t, StartingLevel, c.Level)
	assert.Equal(t, profile.Attributes, c.Attributes())
}

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("insert assigns sequential ids", func(t *testing.T) {
		store := NewInMemoryStore()

		first := &Character{Name: "Thrain"}
		second := &Character{Name: "Sylvara"}
		require.NoError(t, store.Insert(ctx, first))
		require.NoError(t, store.Insert(ctx, second))

		assert.Equal(t, uint(1), first.ID)
		assert.Equal(t, uint(2), second.ID)
	})

	t.Run("get by id returns a copy", func(t *testing.T) {
		store := NewInMemoryStore()

		require.NoError(t, store.Insert(ctx, &Character{Name: "Thrain"}))

		got, err := store.GetByID(ctx, 1)
		require.NoError(t, err)
		got.Name = "changed"

		again, err := store.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Thrain", again.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := NewInMemoryStore()

		_, err := store.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
