package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/models"

	"github.com/alicebob/miniredis/v2"
)

// startRedis 启动内存 Redis 并完成初始化，测试结束后关闭连接
func startRedis(t *testing.T, keyPrefix string) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port failed: %v", err)
	}
	if err := InitRedis(&config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port, Prefix: keyPrefix}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })
	return mr
}

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should be disabled")
	}
	store := NewLinkedInConnectionStore()
	ctx := context.Background()
	if err := store.Save(ctx, 1, models.LinkedInConnection{State: models.LinkedInStateConnected, AccessToken: "tok"}); err != nil {
		t.Fatalf("save should be a no-op, got %v", err)
	}
	conn, err := store.Get(ctx, 1)
	if err != nil || conn != nil {
		t.Fatalf("expected nil connection, got %+v %v", conn, err)
	}
	if err := Ping(ctx); err != nil {
		t.Fatalf("ping on disabled cache should succeed, got %v", err)
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	old := prefix
	prefix = defaultPrefix
	defer func() { prefix = old }()

	if got := buildKey(linkedInConnectionKey(3)); got != "consult:linkedin:conn:3" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := buildKey("  "); got != "consult" {
		t.Fatalf("unexpected empty key: %s", got)
	}
}

func TestUnreachableRedisStaysDisabled(t *testing.T) {
	err := InitRedis(&config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1, Prefix: "site"})
	if err == nil {
		t.Fatalf("expected ping error for unreachable redis")
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should stay disabled after a failed ping")
	}
	if Prefix() != "site" {
		t.Fatalf("prefix want site got %s", Prefix())
	}
}

func TestLinkedInConnectionStoreRoundTrip(t *testing.T) {
	mr := startRedis(t, "site")
	if !Enabled() {
		t.Fatalf("cache should be enabled")
	}
	ctx := context.Background()
	store := NewLinkedInConnectionStore()

	conn, err := store.Get(ctx, 7)
	if err != nil || conn != nil {
		t.Fatalf("missing connection want (nil, nil) got %+v %v", conn, err)
	}

	updatedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := store.Save(ctx, 7, models.LinkedInConnection{
		State:       models.LinkedInStateConnected,
		AccessToken: "tok-7",
		UpdatedAt:   updatedAt,
	}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !mr.Exists("site:linkedin:conn:7") {
		t.Fatalf("expected prefixed key, keys: %v", mr.Keys())
	}
	if ttl := mr.TTL("site:linkedin:conn:7"); ttl != 0 {
		t.Fatalf("connection should not expire, ttl %v", ttl)
	}

	conn, err = store.Get(ctx, 7)
	if err != nil || conn == nil {
		t.Fatalf("get failed: %+v %v", conn, err)
	}
	if conn.State != models.LinkedInStateConnected || conn.AccessToken != "tok-7" || !conn.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("unexpected connection %+v", conn)
	}

	// 状态变更覆盖原值
	if err := store.Save(ctx, 7, models.LinkedInConnection{State: models.LinkedInStateInvalid, AccessToken: "tok-7"}); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	conn, err = store.Get(ctx, 7)
	if err != nil || conn == nil || conn.State != models.LinkedInStateInvalid {
		t.Fatalf("overwrite not visible: %+v %v", conn, err)
	}
	if other, err := store.Get(ctx, 8); err != nil || other != nil {
		t.Fatalf("other user should be empty, got %+v %v", other, err)
	}
	if err := Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
