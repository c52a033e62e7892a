package project

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a projects file when it changes on disk. Editors often
// write via rename, so the watch is placed on the parent directory and
// filtered down to the target file.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// debounceWindow coalesces the rapid event bursts editors emit per save.
const debounceWindow = 200 * time.Millisecond

// Watch starts watching path and invokes onReload with each successfully
// loaded catalog. Load failures are reported to onError and the previous
// catalog stays in effect. Close the returned watcher to stop.
func Watch(path string, onReload func(*Catalog), onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		watcher: fsw,
		done:    make(chan struct{}),
	}
	go w.run(onReload, onError)
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run(onReload func(*Catalog), onError func(error)) {
	var pending *time.Timer
	reload := func() {
		catalog, err := LoadFile(w.path)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onReload(catalog)
	}

	for {
		select {
		case <-w.done:
			if pending != nil {
				pending.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounceWindow, reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
