package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestInFlightTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.InFlightKey("quote", "token-1")
	acquired, err := client.SetNX(ctx, key, "1", 30*time.Second)
	if err != nil {
		t.Fatalf("setnx failed: %v", err)
	}
	if !acquired {
		t.Fatalf("expected first acquisition to succeed")
	}

	acquired, err = client.SetNX(ctx, key, "1", 30*time.Second)
	if err != nil {
		t.Fatalf("setnx failed: %v", err)
	}
	if acquired {
		t.Fatalf("expected second acquisition to be rejected while in flight")
	}

	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	acquired, err = client.SetNX(ctx, key, "1", 30*time.Second)
	if err != nil {
		t.Fatalf("setnx failed: %v", err)
	}
	if !acquired {
		t.Fatalf("expected acquisition to succeed after release")
	}
}

func TestSetGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "v" {
		t.Fatalf("expected v got %q", got)
	}

	if _, err := client.Get(ctx, "missing"); err != redis.Nil {
		t.Fatalf("expected redis.Nil for missing key, got %v", err)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.InFlightKey("quote", "tok"); got != "onnuri:inflight:quote:tok" {
		t.Fatalf("unexpected in-flight key %s", got)
	}
	if got := client.CounterKey("hits"); got != "onnuri:counter:hits" {
		t.Fatalf("unexpected counter key %s", got)
	}
	if got := client.InFlightKey("quote", ""); got != "onnuri:inflight:quote" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
}

type mockCmdable struct {
	data        map[string]string
	incr        map[string]int64
	expireCalls []expireCall
}

type expireCall struct {
	key string
	ttl time.Duration
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: make(map[string]string),
		incr: make(map[string]int64),
	}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.incr[key]++
	return redis.NewIntResult(m.incr[key], nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.expireCalls = append(m.expireCalls, expireCall{key: key, ttl: expiration})
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
