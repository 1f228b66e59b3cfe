package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateDecision es el resultado de contar un mensaje de chat dentro de la ventana.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// ChatRateLimiter limita mensajes por sesión en una ventana de tiempo.
type ChatRateLimiter interface {
	Allow(sessionID string) RateDecision
}

// Devuelve {mensajes en la ventana, ms hasta que la ventana expire}.
const redisChatAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`

type redisChatRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisChatRateLimiter(client *redis.Client, window time.Duration, max int) ChatRateLimiter {
	if client == nil {
		return nil
	}
	if window < time.Second {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisChatRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "chat:rl:",
	}
}

// sessionKey usa el id tal cual: los ids de sesión son UUID y distinguen mayúsculas.
func (l *redisChatRateLimiter) sessionKey(sessionID string) string {
	return l.prefix + strings.TrimSpace(sessionID)
}

// Allow falla abierto: si Redis no responde, el mensaje pasa con la cuota completa.
func (l *redisChatRateLimiter) Allow(sessionID string) RateDecision {
	if l == nil || l.client == nil {
		return RateDecision{Allowed: true}
	}
	if strings.TrimSpace(sessionID) == "" {
		return RateDecision{Allowed: false, RetryAfter: l.window}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	vals, err := l.client.Eval(ctx, redisChatAllowScript, []string{l.sessionKey(sessionID)}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(vals) != 2 {
		return RateDecision{Allowed: true, Remaining: l.max}
	}
	count, ttl := int(vals[0]), time.Duration(vals[1])*time.Millisecond
	if ttl <= 0 {
		ttl = l.window
	}

	if count > l.max {
		return RateDecision{Allowed: false, RetryAfter: ttl}
	}
	return RateDecision{Allowed: true, Remaining: l.max - count}
}
