package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	hoplite "github.com/jeremymarch/hoplite-verbs-rs-sub000"
)

// watch reloads the lexicon after verb files under dir change. Bursts of
// events within debounce trigger one reload.
func (s *server) watch(ctx context.Context, dir, glob string, debounce time.Duration) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return err
	}
	s.logger.Info("watching verb files", "dir", dir)

	go func() {
		defer fsw.Close()
		var timer <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
					continue
				}
				s.logger.Debug("verb file change", "path", event.Name, "op", event.Op.String())
				timer = time.After(debounce)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				s.logger.Error("watcher error", "error", err)
			case <-timer:
				timer = nil
				s.reload(dir, glob)
			}
		}
	}()
	return nil
}

// reload swaps in a freshly loaded lexicon, keeping the old one on error.
func (s *server) reload(dir, glob string) {
	lex, err := hoplite.New(dir, hoplite.WithGlob(glob), hoplite.WithLogger(s.logger))
	if err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		s.logger.Warn("lexicon reload failed", "error", err)
		return
	}
	s.lexicon.Store(lex)
	s.metrics.reloads.WithLabelValues("ok").Inc()
	s.metrics.verbs.Set(float64(lex.Len()))
	s.logger.Info("lexicon reloaded", "verbs", lex.Len())
}
