package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Role tags who produced a turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Valid reports whether the role is one of the three known roles
func (r Role) Valid() bool {
	return r == RoleSystem || r == RoleAssistant || r == RoleUser
}

var (
	// ErrInvalidTurn is returned when an append would break the turn order
	ErrInvalidTurn = errors.New("invalid turn")
	// ErrCorrupt is returned when a stored transcript fails shape validation
	ErrCorrupt = errors.New("corrupt transcript")
)

// Turn is one element of a transcript: a role tag plus text content
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered, append-only conversation history of one session.
// Turn 0 is always the single system turn; after the opening assistant turn
// the roles strictly alternate user/assistant.
type Transcript []Turn

// Seed builds the two-turn initial transcript: the game-master instructions
// followed by the generated opening scene.
func Seed(systemPrompt, opening string) Transcript {
	return Transcript{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleAssistant, Content: opening},
	}
}

// Append returns a new transcript with one turn added. The system turn is
// inserted only by Seed; any append that would produce two consecutive turns
// of the same non-system role is rejected.
func (t Transcript) Append(role Role, content string) (Transcript, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidTurn, role)
	}
	if role == RoleSystem {
		return nil, fmt.Errorf("%w: system turn may only appear once, at seeding", ErrInvalidTurn)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: cannot append to an unseeded transcript", ErrInvalidTurn)
	}

	last := t[len(t)-1]
	if last.Role == role {
		return nil, fmt.Errorf("%w: consecutive %s turns", ErrInvalidTurn, role)
	}
	if last.Role == RoleSystem && role != RoleAssistant {
		return nil, fmt.Errorf("%w: the system turn must be answered by the assistant", ErrInvalidTurn)
	}

	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, Turn{Role: role, Content: content}), nil
}

// Validate checks the shape of a transcript loaded from storage: non-empty,
// a single leading system turn, known roles and strict alternation afterwards.
func (t Transcript) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrCorrupt)
	}
	if t[0].Role != RoleSystem {
		return fmt.Errorf("%w: first turn is %q, want system", ErrCorrupt, t[0].Role)
	}

	for i, turn := range t {
		if !turn.Role.Valid() {
			return fmt.Errorf("%w: turn %d has unknown role %q", ErrCorrupt, i, turn.Role)
		}
		if i > 0 && turn.Role == RoleSystem {
			return fmt.Errorf("%w: duplicate system turn at %d", ErrCorrupt, i)
		}
		if i > 1 && turn.Role == t[i-1].Role {
			return fmt.Errorf("%w: consecutive %s turns at %d", ErrCorrupt, turn.Role, i)
		}
	}

	// The system turn is always answered first
	if len(t) > 1 && t[1].Role != RoleAssistant {
		return fmt.Errorf("%w: turn 1 is %q, want assistant", ErrCorrupt, t[1].Role)
	}

	return nil
}

// Linearize renders the transcript as the single ordered text block sent to
// the narrative generator, one "role: content" line per turn. Turn order is
// the only context the generator receives, so rendering is strictly in order.
func (t Transcript) Linearize() string {
	var b strings.Builder
	for i, turn := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Content)
	}
	return b.String()
}

// Parse decodes the stored chat-history form (a JSON array of role/content
// records) and validates its shape. Anything malformed is surfaced as
// ErrCorrupt rather than repaired.
func Parse(raw []byte) (Transcript, error) {
	var t Transcript
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode serializes the transcript into its stored chat-history form
func (t Transcript) Encode() ([]byte, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript: %w", err)
	}
	return raw, nil
}
