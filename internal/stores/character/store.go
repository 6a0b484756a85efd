package character

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no character exists for the requested id
var ErrNotFound = errors.New("character not found")

// Store interface defines methods for character persistence
type Store interface {
	Insert(ctx context.Context, c *Character) error
	GetByID(ctx context.Context, id uint) (*Character, error)
}

// MySqlStore handles character persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new character store with a GORM connection
func NewMySqlStore(dsn string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate the characters table
	if err := db.AutoMigrate(&Character{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return &MySqlStore{db: db}, nil
}

// Insert persists a new character and assigns its id
func (s *MySqlStore) Insert(ctx context.Context, c *Character) error {
	result := s.db.WithContext(ctx).Create(c)
	if result.Error != nil {
		return fmt.Errorf("failed to insert character: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a character by id
func (s *MySqlStore) GetByID(ctx context.Context, id uint) (*Character, error) {
	var c Character
	result := s.db.WithContext(ctx).First(&c, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", result.Error)
	}
	return &c, nil
}

// Close closes the database connection
func (s *MySqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

// InMemoryStore keeps characters in process memory (used by tests)
type InMemoryStore struct {
	mu         sync.RWMutex
	characters map[uint]*Character
	nextID     uint
}

// NewInMemoryStore creates a new in-memory character store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		characters: make(map[uint]*Character),
		nextID:     1,
	}
}

// Insert stores a new character and assigns its id
func (s *InMemoryStore) Insert(ctx context.Context, c *Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	stored := *c
	s.characters[c.ID] = &stored
	return nil
}

// GetByID retrieves a character by id
func (s *InMemoryStore) GetByID(ctx context.Context, id uint) (*Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.characters[id]
	if !ok {
		return nil, ErrNotFound
	}

	out := *c
	return &out, nil
}
