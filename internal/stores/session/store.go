package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hearthfire/gamemaster/internal/stores/character"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no session exists for the requested token
var ErrNotFound = errors.New("session not found")

// Store interface defines methods for session persistence. Writes are
// single-record and atomic; UpdateTranscript replaces the stored transcript
// wholesale (last writer wins).
type Store interface {
	Insert(ctx context.Context, sess *GameSession) error
	GetByToken(ctx context.Context, token string) (*GameSession, error)
	UpdateTranscript(ctx context.Context, token string, chatHistory string) error
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)
}

// MySqlStore handles session persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new session store with a GORM connection
func NewMySqlStore(dsn string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate the game_sessions table (and its character FK target)
	if err := db.AutoMigrate(&character.Character{}, &GameSession{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return &MySqlStore{db: db}, nil
}

// Insert persists a new session
func (s *MySqlStore) Insert(ctx context.Context, sess *GameSession) error {
	result := s.db.WithContext(ctx).Create(sess)
	if result.Error != nil {
		return fmt.Errorf("failed to insert session: %w", result.Error)
	}
	return nil
}

// GetByToken retrieves a session by its external token
func (s *MySqlStore) GetByToken(ctx context.Context, token string) (*GameSession, error) {
	var sess GameSession
	result := s.db.WithContext(ctx).First(&sess, "session_id = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", result.Error)
	}
	return &sess, nil
}

// UpdateTranscript overwrites the stored transcript for a token
func (s *MySqlStore) UpdateTranscript(ctx context.Context, token string, chatHistory string) error {
	result := s.db.WithContext(ctx).
		Model(&GameSession{}).
		Where("session_id = ?", token).
		Updates(map[string]any{
			"chat_history": chatHistory,
			"last_updated": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStale removes sessions not touched since olderThan and reports how
// many were purged
func (s *MySqlStore) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("last_updated < ?", olderThan).
		Delete(&GameSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete stale sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Close closes the database connection
func (s *MySqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

// InMemoryStore keeps sessions in process memory (used by tests)
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*GameSession
	nextID   uint
}

// NewInMemoryStore creates a new in-memory session store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*GameSession),
		nextID:   1,
	}
}

// Insert stores a new session keyed by its token
func (s *InMemoryStore) Insert(ctx context.Context, sess *GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.SessionID]; exists {
		return fmt.Errorf("session token already exists")
	}

	now := time.Now().UTC()
	sess.ID = s.nextID
	s.nextID++
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.LastUpdated = now

	stored := *sess
	s.sessions[sess.SessionID] = &stored
	return nil
}

// GetByToken retrieves a session by its external token
func (s *InMemoryStore) GetByToken(ctx context.Context, token string) (*GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}

	out := *sess
	return &out, nil
}

// UpdateTranscript overwrites the stored transcript for a token
func (s *InMemoryStore) UpdateTranscript(ctx context.Context, token string, chatHistory string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrNotFound
	}

	sess.ChatHistory = chatHistory
	sess.LastUpdated = time.Now().UTC()
	return nil
}

// DeleteStale removes sessions not touched since olderThan
func (s *InMemoryStore) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for token, sess := range s.sessions {
		if sess.LastUpdated.Before(olderThan) {
			delete(s.sessions, token)
			purged++
		}
	}
	return purged, nil
}
