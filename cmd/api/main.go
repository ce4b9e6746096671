package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-echomate/internal/config"
	"backend-echomate/internal/db"
	"backend-echomate/internal/server"
	"backend-echomate/internal/store"

	"github.com/gofiber/fiber/v2"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	openStore  func(config.Config) (store.Store, func(), error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, store.Store, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		openStore:  openStore,
		notify:     signal.Notify,
		run:        Run,
	}
}

var errNoRedis = errors.New("redis backend selected but REDIS_ADDR is empty")

// openStore builds the durable KV backend selected by config. The cleanup
// closes whatever connection backs it.
func openStore(cfg config.Config) (store.Store, func(), error) {
	switch cfg.StorageBackend {
	case "redis":
		client := db.ConnectRedis(cfg)
		if client == nil {
			return nil, nil, errNoRedis
		}
		return store.NewRedis(client), func() { _ = client.Close() }, nil
	case "postgres":
		pool, err := db.ConnectPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		kv := store.NewPostgres(pool)
		if err := kv.EnsureSchema(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return kv, pool.Close, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	kv, cleanup, err := deps.openStore(cfg)
	if err != nil {
		log.Printf("storage setup failed, falling back to memory: %v", err)
		kv = store.NewMemory()
		cleanup = func() {}
	}
	defer cleanup()

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, kv, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, kv store.Store, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, kv)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.App.ShutdownWithContext(shutdownCtx)
}
