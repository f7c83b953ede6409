// Command server exposes the verb form generator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/verbs
//	GET  /api/form?verb=<lemma>&tense=&voice=&mood=&person=&number=&gender=&case=[&decompose=true]
//	GET  /api/paradigm?verb=<lemma>
//	GET  /metrics
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	hoplite "github.com/jeremymarch/hoplite-verbs-rs-sub000"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/config"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/paradigm"
)

func main() {
	configPath := flag.String("config", "", "config file path (YAML)")
	dataDir := flag.String("data", "", "directory of verb files")
	addr := flag.String("addr", "", "listen address")
	watch := flag.Bool("watch", false, "reload verb files when they change")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*configPath, *dataDir, *addr, *logLevel, *watch); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(configPath, dataDir, addr, logLevel string, watch bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.NewLoader(nil).Load()
	}
	if err != nil {
		return err
	}
	cfg.Merge(&config.Config{
		Data:   config.DataConfig{Dir: dataDir},
		Server: config.ServerConfig{Addr: addr, Watch: watch},
		Log:    config.LogConfig{Level: logLevel},
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("loading verbs", "dir", cfg.Data.Dir)
	lex, err := hoplite.New(cfg.Data.Dir, hoplite.WithGlob(cfg.Data.Glob), hoplite.WithLogger(logger))
	if err != nil {
		return err
	}

	m := newMetrics()
	m.verbs.Set(float64(lex.Len()))
	b := paradigm.NewBuilder(paradigm.WithWorkers(cfg.Paradigm.Workers), paradigm.WithLogger(logger))
	s := newServer(lex, b, m, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Server.Watch {
		if err := s.watch(ctx, cfg.Data.Dir, cfg.Data.Glob, 200*time.Millisecond); err != nil {
			return err
		}
	}

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: s.handler(cfg.Server.AllowedOrigins)}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()
	logger.Info("listening", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
