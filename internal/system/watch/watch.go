// Released under an MIT license. See LICENSE.

// Package watch runs a function each time a file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long events must stop arriving before the file is considered changed.
const Settle = 10 * time.Millisecond

// File calls run once and then again each time the file at path is written
// or replaced. It returns when ctx is done or the watcher fails.
func File(ctx context.Context, path string, run func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path = filepath.Clean(path)

	// Editors often replace a file by renaming so watch its directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	run()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			return err

		case e, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(e.Name) != path {
				continue
			}

			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			settle(w.Events)
			run()
		}
	}
}

// settle discards events until none arrive for Settle.
func settle(events <-chan fsnotify.Event) {
	for {
		time.Sleep(Settle)

		select {
		case <-events:
		default:
			return
		}
	}
}
