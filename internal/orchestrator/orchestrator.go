// Package orchestrator composes the rulebook, the stores and the narrator
// into the three public game operations: create a character, open a session,
// advance a session.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthfire/gamemaster/internal/narrator"
	"github.com/hearthfire/gamemaster/internal/stores/character"
	"github.com/hearthfire/gamemaster/internal/stores/session"
	"github.com/hearthfire/gamemaster/pkg/rulebook"
	"github.com/hearthfire/gamemaster/pkg/transcript"
)

// DefaultGeneratorTimeout bounds a single narrator call
const DefaultGeneratorTimeout = 30 * time.Second

// Orchestrator runs the game flows. Each public operation is an independent
// request-scoped unit of work; the stores are the only shared state.
type Orchestrator struct {
	characters character.Store
	sessions   session.Store
	narrator   narrator.Narrator
	timeout    time.Duration
}

// New creates an orchestrator. A timeout of 0 falls back to the default.
func New(characters character.Store, sessions session.Store, n narrator.Narrator, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultGeneratorTimeout
	}
	return &Orchestrator{
		characters: characters,
		sessions:   sessions,
		narrator:   n,
		timeout:    timeout,
	}
}

// CreateCharacter validates the selection, derives the character sheet and
// persists it. Validation runs before any write: an invalid selection never
// reaches the store.
func (o *Orchestrator) CreateCharacter(ctx context.Context, name, race, class string) (*character.Character, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidSelection)
	}

	profile, err := rulebook.Resolve(race, class)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	c := character.New(name, race, class, profile)
	if err := o.characters.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return c, nil
}

// GetCharacter fetches a character sheet by id
func (o *Orchestrator) GetCharacter(ctx context.Context, id uint) (*character.Character, error) {
	c, err := o.characters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, character.ErrNotFound) {
			return nil, fmt.Errorf("%w: character %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return c, nil
}

// OpenedSession is the result of opening a game session
type OpenedSession struct {
	Token          string
	Character      *character.Character
	InitialMessage string
}

// OpenSession starts a game for an existing character: it asks the narrator
// for an opening scene, seeds the transcript and persists the session under
// a fresh unguessable token. The generation call happens before the store
// write; if the write then fails the operation fails as a whole and no
// partial session becomes visible.
func (o *Orchestrator) OpenSession(ctx context.Context, characterID uint) (*OpenedSession, error) {
	c, err := o.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	opening, err := o.generate(ctx, narrator.OpeningPrompt(c.Name, c.Race, c.Class, c.Weapon, c.Armor))
	if err != nil {
		return nil, err
	}

	t := transcript.Seed(narrator.SystemPrompt, opening)
	raw, err := t.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	token := uuid.NewString()
	sess := &session.GameSession{
		SessionID:   token,
		CharacterID: c.ID,
		ChatHistory: string(raw),
	}
	if err := o.sessions.Insert(ctx, sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &OpenedSession{
		Token:          token,
		Character:      c,
		InitialMessage: opening,
	}, nil
}

// AdvanceSession replays the stored transcript plus the player's utterance
// through the narrator and commits both new turns. Validate, generate and
// commit form one logical step: if generation fails, nothing is persisted
// and the stored transcript stays exactly as it was.
func (o *Orchestrator) AdvanceSession(ctx context.Context, token, utterance string) (string, error) {
	sess, err := o.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", fmt.Errorf("%w: session", ErrNotFound)
		}
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	t, err := transcript.Parse([]byte(sess.ChatHistory))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	withUser, err := t.Append(transcript.RoleUser, utterance)
	if err != nil {
		// A stored transcript that cannot take a user turn is out of shape
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	reply, err := o.generate(ctx, withUser.Linearize()+narrator.ReplySuffix)
	if err != nil {
		return "", err
	}

	full, err := withUser.Append(transcript.RoleAssistant, reply)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	raw, err := full.Encode()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := o.sessions.UpdateTranscript(ctx, token, string(raw)); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", fmt.Errorf("%w: session", ErrNotFound)
		}
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return reply, nil
}

// generate runs one bounded narrator call
func (o *Orchestrator) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	text, err := o.narrator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerator, err)
	}
	return text, nil
}
