package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blablab-app/blablab-server/internal/logger"
)

// settleDelay gives the OS time to finish writing a freshly created file
// before it is read.
const settleDelay = 500 * time.Millisecond

// audioExtensions mirrors the upload allow-list, keyed by file extension
// since dropped files carry no declared MIME type.
var audioExtensions = []string{".mp3", ".wav", ".m4a", ".webm", ".ogg"}

type implWatcher struct {
	inputDir  string
	handler   EventHandler
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start blocks, dispatching newly created audio files to the handler until
// ctx is cancelled. In-flight handlers are waited for on shutdown.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Drop-folder watcher started on %s (formats: %s)",
		w.inputDir, strings.Join(audioExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight files to finish...")
			w.wg.Wait()
			w.logger.Info(ctx, "Drop-folder watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio file detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range audioExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
