package kvstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/internship-hub-portal/internal/config"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/rs/zerolog"
)

// exerciseStore runs the shared Get/Set/Remove contract against s
func exerciseStore(t *testing.T, s kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "authToken"); err != nil || ok {
		t.Fatalf("Expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "authToken", "tok-1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := s.Get(ctx, "authToken")
	if err != nil || !ok || value != "tok-1" {
		t.Fatalf("Expected tok-1, got %q ok=%v err=%v", value, ok, err)
	}

	if err := s.Set(ctx, "authToken", "tok-2"); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	if value, _, _ := s.Get(ctx, "authToken"); value != "tok-2" {
		t.Errorf("Expected overwrite to win, got %q", value)
	}

	if err := s.Remove(ctx, "authToken"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "authToken"); ok {
		t.Error("Key should be gone after Remove")
	}

	// Removing a missing key is not an error
	if err := s.Remove(ctx, "authToken"); err != nil {
		t.Errorf("Remove of missing key failed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, kvstore.NewMemory())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := kvstore.NewRedis("redis://"+mr.Addr(), "portal:")
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store)

	if err := store.Set(context.Background(), "user", "{}"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !mr.Exists("portal:user") {
		t.Error("Expected key to be stored under the configured prefix")
	}
	if ttl := mr.TTL("portal:user"); ttl != 0 {
		t.Errorf("Expected no expiry, got %s", ttl)
	}
	if err := kvstore.Ping(context.Background(), store); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestRedisStore_BadURL(t *testing.T) {
	if _, err := kvstore.NewRedis("mysql://localhost:3306", "portal:"); err == nil {
		t.Fatal("Expected error for a non-redis URL")
	}
}

func TestNopStore(t *testing.T) {
	ctx := context.Background()
	s := kvstore.Nop{}

	if err := s.Set(ctx, "authToken", "tok"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "authToken"); ok {
		t.Error("Nop store must never return a value")
	}
}

func TestNamespacedStore_Isolation(t *testing.T) {
	ctx := context.Background()
	root := kvstore.NewMemory()
	a := kvstore.Namespaced(root, "client:a:")
	b := kvstore.Namespaced(root, "client:b:")

	exerciseStore(t, a)

	if err := a.Set(ctx, "authToken", "token-a"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "authToken"); ok {
		t.Error("Namespace b must not see namespace a's keys")
	}
	if value, ok, _ := root.Get(ctx, "client:a:authToken"); !ok || value != "token-a" {
		t.Errorf("Expected prefixed key in root store, got %q ok=%v", value, ok)
	}
}

func TestOpen_Drivers(t *testing.T) {
	log := zerolog.Nop()

	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}
	store, closeFn, err := kvstore.Open(cfg, log)
	if err != nil {
		t.Fatalf("Open memory failed: %v", err)
	}
	defer closeFn()
	if _, ok := store.(*kvstore.Memory); !ok {
		t.Errorf("Expected *Memory, got %T", store)
	}

	mr := miniredis.RunT(t)
	cfg = &config.Config{
		Store: config.StoreConfig{Driver: config.StoreRedis, Prefix: "p:"},
		Redis: config.RedisConfig{URL: "redis://" + mr.Addr()},
	}
	store, closeFn, err = kvstore.Open(cfg, log)
	if err != nil {
		t.Fatalf("Open redis failed: %v", err)
	}
	defer closeFn()
	if _, ok := store.(*kvstore.Redis); !ok {
		t.Errorf("Expected *Redis, got %T", store)
	}

	cfg = &config.Config{Store: config.StoreConfig{Driver: "indexeddb"}}
	if _, _, err := kvstore.Open(cfg, log); err == nil {
		t.Error("Expected error for unknown driver")
	}
}

func BenchmarkMemoryStore_SetGet(b *testing.B) {
	ctx := context.Background()
	s := kvstore.NewMemory()
	for i := 0; i < b.N; i++ {
		s.Set(ctx, "user", `{"version":1}`)
		s.Get(ctx, "user")
	}
}
