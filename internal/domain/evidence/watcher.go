package evidence

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Staleness Watcher
// ─────────────────────────────────────────────────────────────────────────────

// Watcher observes a summary root directory and reports when a tag's latest
// pointer is replaced, letting consumers drop memoized results for that
// generation wholesale.
type Watcher struct {
	fsw *fsnotify.Watcher
	log logging.Logger
}

// NewWatcher starts watching root and every existing tag directory under it.
// onChange is invoked with the reaction-type tag whose latest summary moved.
func NewWatcher(root string, onChange func(rtypes.Type), log logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "create filesystem watcher")
	}

	w := &Watcher{fsw: fsw, log: log.Named("summarywatcher")}
	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "watch summary root").
			WithDetail("root=" + root)
	}
	// latest.json lives one level down, so each existing tag directory gets
	// its own watch; new ones are added as they appear.
	if entries, err := os.ReadDir(root); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				if err := fsw.Add(filepath.Join(root, e.Name())); err != nil {
					w.log.Warn("failed to watch tag directory",
						logging.String("dir", e.Name()), logging.Err(err))
				}
			}
		}
	}

	go w.loop(root, onChange)
	return w, nil
}

func (w *Watcher) loop(root string, onChange func(rtypes.Type)) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(root, ev, onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("summary watcher error", logging.Err(err))
		}
	}
}

func (w *Watcher) handle(root string, ev fsnotify.Event, onChange func(rtypes.Type)) {
	// New tag directories need their own watch for the latest pointer.
	if ev.Op.Has(fsnotify.Create) && filepath.Dir(ev.Name) == filepath.Clean(root) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if err := w.fsw.Add(ev.Name); err != nil {
				w.log.Warn("failed to watch new tag directory",
					logging.String("dir", ev.Name), logging.Err(err))
			}
		}
	}

	if filepath.Base(ev.Name) != latestFile {
		return
	}
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Write) {
		return
	}
	tag := rtypes.Type(filepath.Base(filepath.Dir(ev.Name)))
	w.log.Info("summary generation replaced", logging.String("tag", tag.String()))
	if onChange != nil {
		onChange(tag)
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
