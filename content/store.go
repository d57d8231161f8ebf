package content

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const reloadDebounce = 100 * time.Millisecond

// Store holds the site currently being served.
type Store struct {
	site atomic.Pointer[Site]
}

// NewStore returns a store serving site.
func NewStore(site *Site) *Store {
	s := &Store{}
	s.site.Store(site)
	return s
}

// Site returns the current records.
func (s *Store) Site() *Site { return s.site.Load() }

// Replace swaps in a freshly loaded site.
func (s *Store) Replace(site *Site) { s.site.Store(site) }

// Reload loads dir and swaps it in. On failure the previous site is kept.
func (s *Store) Reload(dir string) error {
	site, err := Load(Source(dir))
	if err != nil {
		return err
	}
	s.Replace(site)
	return nil
}

// Watch reloads dir into the store whenever one of its files changes, until
// ctx is done. Bursts of events are coalesced. Failed reloads are logged and
// the last good content keeps being served.
func (s *Store) Watch(ctx context.Context, dir string, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(reloadDebounce)
		if !timer.Stop() {
			<-timer.C
		}
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("content changed")
				timer.Reset(reloadDebounce)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("content watcher error")
			case <-timer.C:
				if err := s.Reload(dir); err != nil {
					log.Error().Err(err).Msg("content reload failed, keeping previous content")
					continue
				}
				log.Info().Str("dir", dir).Msg("content reloaded")
			}
		}
	}()
	return nil
}
