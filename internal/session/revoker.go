package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// NoticeTTL bounds how long an ended session is remembered for the
// one-time "session expired" notice.
const NoticeTTL = 7 * 24 * time.Hour

// Revoker tracks tokens that stopped being valid before their expiry.
type Revoker interface {
	// Revoke invalidates the token id for ttl (its remaining lifetime).
	// The user ended the session, so it also consumes the expiry notice.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	// FirstNotice returns true the first time it is called for a token id
	// and false afterwards.
	FirstNotice(ctx context.Context, tokenID string) (bool, error)
}

const (
	revokedPrefix = "afyajirani:session:revoked:"
	noticePrefix  = "afyajirani:session:notice:"
)

// RedisRevoker shares revocations across API instances.
type RedisRevoker struct {
	client redis.Cmdable
}

func NewRedisRevoker(client redis.Cmdable) *RedisRevoker {
	return &RedisRevoker{client: client}
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, the token check will reject it anyway
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, revokedPrefix+tokenID, 1, ttl)
		pipe.Set(ctx, noticePrefix+tokenID, 1, NoticeTTL)
		return nil
	})
	return err
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisRevoker) FirstNotice(ctx context.Context, tokenID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, noticePrefix+tokenID, 1, NoticeTTL).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return ok, err
}

// MemoryRevoker keeps revocations in process. Used when redis is not
// configured; state is lost on restart.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	noticed map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{
		revoked: make(map[string]time.Time),
		noticed: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	m.revoked[tokenID] = m.now().Add(ttl)
	m.noticed[tokenID] = m.now().Add(NoticeTTL)
	return nil
}

func (m *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.revoked[tokenID]
	return ok && m.now().Before(until), nil
}

func (m *MemoryRevoker) FirstNotice(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	if until, ok := m.noticed[tokenID]; ok && m.now().Before(until) {
		return false, nil
	}
	m.noticed[tokenID] = m.now().Add(NoticeTTL)
	return true, nil
}

// sweep drops expired entries. Caller holds mu.
func (m *MemoryRevoker) sweep() {
	now := m.now()
	for id, until := range m.revoked {
		if !now.Before(until) {
			delete(m.revoked, id)
		}
	}
	for id, until := range m.noticed {
		if !now.Before(until) {
			delete(m.noticed, id)
		}
	}
}
