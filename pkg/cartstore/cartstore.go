// Package cartstore persists serialized cart snapshots in a local SQLite
// database, one slot per session key. It is the durable mirror of the
// in-memory cart: every mutation writes the full snapshot, and startup reads
// it back.
package cartstore

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is a string-keyed slot holding one serialized cart per session.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// Snapshot is the persisted row: session key plus the serialized cart.
type Snapshot struct {
	SessionID string `gorm:"primaryKey;type:varchar(64)"`
	Payload   []byte
	UpdatedAt time.Time
}

// TableName names the snapshot table.
func (Snapshot) TableName() string {
	return "cart_snapshots"
}

// SQLiteStore is a Store backed by a local SQLite file.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the snapshot database at path. Use
// "file::memory:?cache=shared" for an in-memory store in tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cart store at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the snapshot for a session key. The second return value reports
// whether a snapshot existed.
func (s *SQLiteStore) Load(key string) ([]byte, bool, error) {
	var snap Snapshot
	if err := s.db.First(&snap, "session_id = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load cart snapshot for %s: %w", key, err)
	}
	return snap.Payload, true, nil
}

// Save writes the snapshot for a session key, replacing any prior one.
func (s *SQLiteStore) Save(key string, data []byte) error {
	snap := Snapshot{SessionID: key, Payload: data, UpdatedAt: time.Now()}
	if err := s.db.Save(&snap).Error; err != nil {
		return fmt.Errorf("failed to save cart snapshot for %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for a session key. Missing keys are a no-op.
func (s *SQLiteStore) Delete(key string) error {
	if err := s.db.Delete(&Snapshot{}, "session_id = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete cart snapshot for %s: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	slots map[string][]byte
	mu    sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Load reads a slot.
func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	return data, ok, nil
}

// Save writes a slot.
func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), data...)
	return nil
}

// Delete removes a slot.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
