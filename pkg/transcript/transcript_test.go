package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	tr := Seed("gm instructions", "opening scene")

	require.Len(t, tr, 2)
	assert.Equal(t, RoleSystem, tr[0].Role)
	assert.Equal(t, "gm instructions", tr[0].Content)
	assert.Equal(t, RoleAssistant, tr[1].Role)
	assert.Equal(t, "opening scene", tr[1].Content)
	assert.NoError(t, tr.Validate())
}

func TestAppend(t *testing.T) {
	seeded := Seed("sys", "hello")

	t.Run("alternating turns", func(t *testing.T) {
		withUser, err := seeded.Append(RoleUser, "I open the door")
		require.NoError(t, err)

		full, err := withUser.Append(RoleAssistant, "It creaks open")
		require.NoError(t, err)

		require.Len(t, full, 4)
		assert.NoError(t, full.Validate())
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		_, err := seeded.Append(RoleUser, "first")
		require.NoError(t, err)
		_, err = seeded.Append(RoleUser, "second")
		require.NoError(t, err)
		assert.Len(t, seeded, 2)
	})

	t.Run("rejects consecutive user turns", func(t *testing.T) {
		withUser, err := seeded.Append(RoleUser, "one")
		require.NoError(t, err)

		_, err = withUser.Append(RoleUser, "two")
		assert.ErrorIs(t, err, ErrInvalidTurn)
	})

	t.Run("rejects consecutive assistant turns", func(t *testing.T) {
		_, err := seeded.Append(RoleAssistant, "again")
		assert.ErrorIs(t, err, ErrInvalidTurn)
	})

	t.Run("rejects a second system turn", func(t *testing.T) {
		_, err := seeded.Append(RoleSystem, "more rules")
		assert.ErrorIs(t, err, ErrInvalidTurn)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := seeded.Append(Role("narrator"), "nope")
		assert.ErrorIs(t, err, ErrInvalidTurn)
	})

	t.Run("rejects appending to an unseeded transcript", func(t *testing.T) {
		_, err := Transcript{}.Append(RoleUser, "hello")
		assert.ErrorIs(t, err, ErrInvalidTurn)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		turns Transcript
	}{
		{"empty", Transcript{}},
		{"missing system turn", Transcript{{RoleAssistant, "hi"}, {RoleUser, "hello"}}},
		{"duplicate system turn", Transcript{{RoleSystem, "a"}, {RoleAssistant, "b"}, {RoleSystem, "c"}}},
		{"user answers the system turn", Transcript{{RoleSystem, "a"}, {RoleUser, "b"}}},
		{"consecutive user turns", Transcript{{RoleSystem, "a"}, {RoleAssistant, "b"}, {RoleUser, "c"}, {RoleUser, "d"}}},
		{"unknown role", Transcript{{RoleSystem, "a"}, {Role("gamemaster"), "b"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.turns.Validate(), ErrCorrupt)
		})
	}

	t.Run("valid transcript", func(t *testing.T) {
		tr := Transcript{
			{RoleSystem, "rules"},
			{RoleAssistant, "scene"},
			{RoleUser, "act"},
			{RoleAssistant, "outcome"},
		}
		assert.NoError(t, tr.Validate())
	})
}

func TestLinearize(t *testing.T) {
	tr := Seed("rules", "scene")

	assert.Equal(t, "system: rules\nassistant: scene", tr.Linearize())

	// Appending preserves the earlier rendering verbatim, with the new turn at the end
	withUser, err := tr.Append(RoleUser, "look around")
	require.NoError(t, err)
	assert.Equal(t, tr.Linearize()+"\nuser: look around", withUser.Linearize())
}

func TestParseRoundTrip(t *testing.T) {
	tr := Seed("rules", "scene")
	withUser, err := tr.Append(RoleUser, "go north")
	require.NoError(t, err)

	raw, err := withUser.Encode()
	require.NoError(t, err)

	decoded, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, withUser, decoded)
	assert.Equal(t, withUser.Linearize(), decoded.Linearize())
}

func TestParseCorrupt(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "definitely not json"},
		{"not an array", `{"role": "system", "content": "x"}`},
		{"wrong element shape", `[42, 13]`},
		{"missing system turn", `[{"role": "user", "content": "hi"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
