package signalwall

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 500 * time.Millisecond

// watchIndex reloads the post store whenever posts.json changes. Only local
// directory sources can be watched.
func (a *App) watchIndex(ctx context.Context) error {
	ds, ok := a.source.(*DirSource)
	if !ok || ds.Dir() == "" {
		return errors.New("content root is not a local directory")
	}
	stop, err := WatchIndex(ctx, ds.Dir(), a.Posts)
	if err != nil {
		return err
	}
	a.stopWatch = stop
	return nil
}

// WatchIndex watches the index under dir and calls store.Load after a burst
// of changes settles. The returned func stops the watcher.
func WatchIndex(ctx context.Context, dir string, store *PostStore) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	indexFile := filepath.Join(dir, filepath.FromSlash(IndexPath))
	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(indexFile)); err != nil {
		watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != indexFile {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				store.logger.Infof("index changed: %s (%s)", event.Name, event.Op)
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					_ = store.Load(ctx)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				store.logger.Warnf("index watcher: %v", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		watcher.Close()
	}, nil
}
