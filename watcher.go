package fsresult

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/mo"

	"github.com/jvens/fsresult/fserr"
)

// Watcher reports changes below the paths it watches. Watch failures are
// delivered classified, with the watched root as their path.
type Watcher struct {
	fsys      *FS
	root      string
	recursive bool
	w         *fsnotify.Watcher

	events chan Event
	errors chan *fserr.Error

	done      chan struct{}
	closeOnce sync.Once
}

func newWatcher(fsys *FS, root string, opts WatchOptions) (*Watcher, error) {
	fw, err := fsys.host.NewWatcher(opts.buffer())
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsys:      fsys,
		root:      root,
		recursive: opts.Recursive,
		w:         fw,
		events:    make(chan Event, opts.buffer()),
		errors:    make(chan *fserr.Error, 1),
		done:      make(chan struct{}),
	}
	if err := w.addTree(root); err != nil {
		_ = fw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Events delivers changes. It is closed after Close.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors delivers classified watch failures. It holds at most one unread
// failure; later ones are dropped until it is read, so draining only
// Events never stalls the watcher. It is closed after Close.
func (w *Watcher) Errors() <-chan *fserr.Error { return w.errors }

// Add watches another path, recursively if the watcher is.
func (w *Watcher) Add(path string) mo.Result[struct{}] {
	return do(w.fsys, "watch", path, func() error {
		return w.addTree(path)
	})
}

// Remove stops watching path. Subdirectories added for a recursive watch
// are not removed.
func (w *Watcher) Remove(path string) mo.Result[struct{}] {
	return do(w.fsys, "unwatch", path, func() error {
		return w.w.Remove(path)
	})
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() mo.Result[struct{}] {
	return do(w.fsys, "unwatch", w.root, func() error {
		var err error
		w.closeOnce.Do(func() {
			close(w.done)
			err = w.w.Close()
		})
		return err
	})
}

func (w *Watcher) addTree(path string) error {
	info, err := w.fsys.host.Lstat(path)
	if err != nil {
		return err
	}
	if err := w.w.Add(path); err != nil {
		return err
	}
	if !w.recursive || !info.IsDir() {
		return nil
	}

	entries, err := w.fsys.host.ReadDir(path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := w.addTree(filepath.Join(path, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) loop() {
	defer close(w.events)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if w.recursive && ev.Has(fsnotify.Create) {
				if info, err := w.fsys.host.Lstat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.fail(err)
					}
				}
			}
			select {
			case w.events <- Event{Path: ev.Name, Op: Op(ev.Op)}:
			case <-w.done:
				return
			}

		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}

// fail never blocks the event loop: if the pending error has not been read,
// ce is dropped. It is still observed.
func (w *Watcher) fail(err error) {
	ce := fserr.Classify(err, w.root)
	w.fsys.observe("watch", w.root, 0, ce)
	select {
	case w.errors <- ce:
	default:
	}
}
