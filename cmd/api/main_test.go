package main

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"backend-echomate/internal/config"
	"backend-echomate/internal/store"

	"github.com/gofiber/fiber/v2"
)

var errListen = errors.New("listen error")

func TestRunHandlesSignal(t *testing.T) {
	cfg := config.Config{ServerPort: ":0"}
	signals := make(chan os.Signal, 1)

	listenCalled := false
	listen := func(_ *fiber.App, _ string) error {
		listenCalled = true
		return nil
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		signals <- syscall.SIGINT
	}()

	if err := Run(context.Background(), cfg, nil, signals, listen); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !listenCalled {
		t.Fatalf("expected listen to be called")
	}
}

func TestRunContextCancel(t *testing.T) {
	cfg := config.Config{ServerPort: ":0"}
	signals := make(chan os.Signal, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, cfg, nil, signals, func(_ *fiber.App, _ string) error { return nil }); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
}

func TestRunListenError(t *testing.T) {
	cfg := config.Config{ServerPort: ":0"}
	signals := make(chan os.Signal, 1)

	err := Run(context.Background(), cfg, nil, signals, func(_ *fiber.App, _ string) error {
		return errListen
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenStoreMemory(t *testing.T) {
	kv, cleanup, err := openStore(config.Config{StorageBackend: "memory"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer cleanup()

	if _, ok := kv.(*store.Memory); !ok {
		t.Fatalf("expected memory store, got %T", kv)
	}
}

func TestOpenStoreRedisMissingAddr(t *testing.T) {
	_, _, err := openStore(config.Config{StorageBackend: "redis", RedisAddr: ""})
	if err == nil {
		t.Fatalf("expected error for missing redis addr")
	}
}

func TestOpenStoreRedis(t *testing.T) {
	kv, cleanup, err := openStore(config.Config{StorageBackend: "redis", RedisAddr: "localhost:6379"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer cleanup()

	if _, ok := kv.(*store.Redis); !ok {
		t.Fatalf("expected redis store, got %T", kv)
	}
}

func TestOpenStorePostgresConnectError(t *testing.T) {
	_, _, err := openStore(config.Config{StorageBackend: "postgres", PostgresURL: "invalid-url"})
	if err == nil {
		t.Fatalf("expected connect error")
	}
}

func TestRealMainFallsBackToMemory(t *testing.T) {
	var gotStore store.Store
	deps := mainDeps{
		loadConfig: func() config.Config { return config.Config{ServerPort: ":0"} },
		openStore: func(config.Config) (store.Store, func(), error) {
			return nil, nil, errors.New("boom")
		},
		notify: func(chan<- os.Signal, ...os.Signal) {},
		run: func(_ context.Context, _ config.Config, kv store.Store, _ <-chan os.Signal, _ ListenFunc) error {
			gotStore = kv
			return nil
		},
	}

	realMain(deps)

	if _, ok := gotStore.(*store.Memory); !ok {
		t.Fatalf("expected memory fallback, got %T", gotStore)
	}
}

func TestMainRunnerWired(t *testing.T) {
	oldRunner := mainRunner
	oldProvider := mainDepsProvider
	defer func() {
		mainRunner = oldRunner
		mainDepsProvider = oldProvider
	}()

	called := false
	mainDepsProvider = func() mainDeps { return mainDeps{} }
	mainRunner = func(_ mainDeps) { called = true }

	main()

	if !called {
		t.Fatalf("expected main to invoke the runner")
	}
}
