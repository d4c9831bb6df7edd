// Package session issues and resolves till session ids and checks cashier
// credentials.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound indicates an unknown or expired session.
	ErrNotFound = errors.New("session not found")
	// ErrBadCredentials indicates a rejected login.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Store keeps session id to username mappings.
type Store interface {
	Create(ctx context.Context, username string) (string, error)
	Lookup(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string { return "session:" + id }

// Create stores a new session for username and returns its id.
func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, key(id), username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Lookup returns the username for id.
func (s *RedisStore) Lookup(ctx context.Context, id string) (string, error) {
	user, err := s.client.Get(ctx, key(id)).Result()
	if errors.Is(err, redis.Nil) || (err == nil && user == "") {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return user, nil
}

// Delete removes the session.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MemoryStore keeps sessions in process memory. Sessions do not expire.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]string)}
}

// Create stores a new session for username.
func (s *MemoryStore) Create(ctx context.Context, username string) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = username
	s.mu.Unlock()
	return id, nil
}

// Lookup returns the username for id.
func (s *MemoryStore) Lookup(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[id]
	if !ok {
		return "", ErrNotFound
	}
	return user, nil
}

// Delete removes the session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// Authenticator checks cashier passwords against bcrypt hashes. With no
// cashiers configured every non-empty username is accepted.
type Authenticator struct {
	cashiers map[string]string
}

// NewAuthenticator creates an Authenticator over username to hash pairs.
func NewAuthenticator(cashiers map[string]string) *Authenticator {
	return &Authenticator{cashiers: cashiers}
}

// Check verifies the credentials.
func (a *Authenticator) Check(username, password string) error {
	if username == "" {
		return ErrBadCredentials
	}
	if len(a.cashiers) == 0 {
		return nil
	}
	hash, ok := a.cashiers[username]
	if !ok {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for CAFE_CASHIERS.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
