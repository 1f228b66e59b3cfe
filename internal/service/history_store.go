package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"mindcare/internal/domain"
)

// HistoryStore guarda la ventana reciente de turnos por sesión.
type HistoryStore interface {
	Recent(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error)
	Append(ctx context.Context, sessionID string, turn domain.ConversationTurn) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryHistoryStore struct {
	mu       sync.Mutex
	sessions map[string][]domain.ConversationTurn
	limit    int
}

func NewMemoryHistoryStore(limit int) HistoryStore {
	if limit <= 0 {
		limit = domain.MaxHistoryTurns
	}
	return &memoryHistoryStore{
		sessions: make(map[string][]domain.ConversationTurn),
		limit:    limit,
	}
}

func (s *memoryHistoryStore) Recent(_ context.Context, sessionID string) ([]domain.ConversationTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.sessions[sessionID]
	out := make([]domain.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}

func (s *memoryHistoryStore) Append(_ context.Context, sessionID string, turn domain.ConversationTurn) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = domain.AppendTurn(s.sessions[sessionID], turn, s.limit)
	return nil
}

func (s *memoryHistoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// RPUSH + LTRIM + EXPIRE en un solo paso para que la ventana nunca supere el límite.
const redisHistoryAppendScript = `
redis.call("RPUSH", KEYS[1], ARGV[1])
redis.call("LTRIM", KEYS[1], -tonumber(ARGV[2]), -1)
redis.call("EXPIRE", KEYS[1], ARGV[3])
return redis.call("LLEN", KEYS[1])
`

type redisHistoryClient interface {
	redisEvaler
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisHistoryStore struct {
	client redisHistoryClient
	limit  int
	ttl    time.Duration
	prefix string
}

func NewRedisHistoryStore(client *redis.Client, limit int, ttl time.Duration) HistoryStore {
	if client == nil {
		return nil
	}
	if limit <= 0 {
		limit = domain.MaxHistoryTurns
	}
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &redisHistoryStore{
		client: client,
		limit:  limit,
		ttl:    ttl,
		prefix: "chat:history:",
	}
}

func (s *redisHistoryStore) Recent(ctx context.Context, sessionID string) ([]domain.ConversationTurn, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := s.client.LRange(ctx, s.prefix+sessionID, int64(-s.limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	turns := make([]domain.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn domain.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("decode history turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *redisHistoryStore) Append(ctx context.Context, sessionID string, turn domain.ConversationTurn) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("encode history turn: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	seconds := int(s.ttl.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	keys := []string{s.prefix + sessionID}
	if err := s.client.Eval(ctx, redisHistoryAppendScript, keys, string(payload), s.limit, seconds).Err(); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *redisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
