package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// RedisRepository is an in-memory RedisRepository. Values are stored JSON
// encoded, like the real repository does.
type RedisRepository struct {
	mu      sync.Mutex
	data    map[string]string
	expires map[string]time.Duration

	// Err, when set, is returned by every call.
	Err error
}

func NewRedisRepository() *RedisRepository {
	return &RedisRepository{
		data:    make(map[string]string),
		expires: make(map[string]time.Duration),
	}
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.data, key)
	delete(r.expires, key)
	return nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.data[key] = string(encoded)
	r.expires[key] = exp
	return nil
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	return r.data[key], nil
}

func (r *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	if _, exists := r.data[key]; exists {
		return false, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.data[key] = string(encoded)
	r.expires[key] = exp
	return true, nil
}

func (r *RedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return r.expires[key], nil
}

// Has reports whether key is stored.
func (r *RedisRepository) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.data[key]
	return ok
}

// Raw returns the stored JSON for key.
func (r *RedisRepository) Raw(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key]
}

// Len returns the number of stored keys.
func (r *RedisRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
