package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisKVClient struct {
	lastSetKey string
	lastSetVal interface{}
	lastSetTTL time.Duration
	lastExists []string
	lastDel    []string

	setErr    error
	existsErr error
	delErr    error
	existsN   int64
}

func (m *mockRedisKVClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.lastSetKey = key
	m.lastSetVal = value
	m.lastSetTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if m.setErr != nil {
		cmd.SetErr(m.setErr)
		return cmd
	}
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKVClient) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastExists = keys
	cmd := redis.NewIntCmd(ctx)
	if m.existsErr != nil {
		cmd.SetErr(m.existsErr)
		return cmd
	}
	cmd.SetVal(m.existsN)
	return cmd
}

func (m *mockRedisKVClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.lastDel = keys
	cmd := redis.NewIntCmd(ctx)
	if m.delErr != nil {
		cmd.SetErr(m.delErr)
		return cmd
	}
	cmd.SetVal(1)
	return cmd
}

func TestMemorySessionStore_Basics(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &memorySessionStore{
		items: make(map[string]time.Time),
		now:   func() time.Time { return now },
	}

	ok, err := store.Exists("missing")
	if err != nil || ok {
		t.Fatalf("expected missing session false,nil; got %v,%v", ok, err)
	}

	if err := store.Store("s-1", time.Minute); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	ok, err = store.Exists("s-1")
	if err != nil || !ok {
		t.Fatalf("expected session exists, got %v,%v", ok, err)
	}

	now = now.Add(2 * time.Minute)
	ok, err = store.Exists("s-1")
	if err != nil || ok {
		t.Fatalf("expected session expired, got %v,%v", ok, err)
	}
}

func TestMemorySessionStore_RevokeAndEmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	if err := store.Store("", time.Minute); err != nil {
		t.Fatalf("empty id store should be no-op, got %v", err)
	}
	if err := store.Store("s-2", time.Minute); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if err := store.Revoke("s-2"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	ok, err := store.Exists("s-2")
	if err != nil || ok {
		t.Fatalf("expected revoked session absent, got %v,%v", ok, err)
	}
}

func TestRedisSessionStore_Basics(t *testing.T) {
	mock := &mockRedisKVClient{existsN: 1}
	store := &redisSessionStore{
		client: mock,
		prefix: "chat:session:",
	}

	if err := store.Store(" s1 ", 0); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if mock.lastSetKey != "chat:session:s1" {
		t.Fatalf("unexpected key, got %q", mock.lastSetKey)
	}
	if mock.lastSetTTL <= 0 {
		t.Fatalf("expected positive TTL fallback, got %v", mock.lastSetTTL)
	}

	ok, err := store.Exists(" s1 ")
	if err != nil || !ok {
		t.Fatalf("expected exists true,nil; got %v,%v", ok, err)
	}
	if len(mock.lastExists) != 1 || mock.lastExists[0] != "chat:session:s1" {
		t.Fatalf("unexpected exists key: %+v", mock.lastExists)
	}

	if err := store.Revoke(" s1 "); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if len(mock.lastDel) != 1 || mock.lastDel[0] != "chat:session:s1" {
		t.Fatalf("unexpected del key: %+v", mock.lastDel)
	}
}

func TestRedisSessionStore_ErrorPathsAndEmptyID(t *testing.T) {
	mock := &mockRedisKVClient{
		setErr:    errors.New("set failed"),
		existsErr: errors.New("exists failed"),
		delErr:    errors.New("del failed"),
	}
	store := &redisSessionStore{
		client: mock,
		prefix: "chat:session:",
	}

	if err := store.Store("", time.Minute); err != nil {
		t.Fatalf("empty id store should be no-op, got %v", err)
	}
	ok, err := store.Exists("")
	if err != nil || ok {
		t.Fatalf("empty id exists should be false,nil; got %v,%v", ok, err)
	}
	if err := store.Revoke(""); err != nil {
		t.Fatalf("empty id revoke should be no-op, got %v", err)
	}

	if err := store.Store("s2", time.Minute); err == nil {
		t.Fatalf("expected store error")
	}
	if _, err := store.Exists("s2"); err == nil {
		t.Fatalf("expected exists error")
	}
	if err := store.Revoke("s2"); err == nil {
		t.Fatalf("expected revoke error")
	}
}
