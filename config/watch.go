package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Changes to the same file within this window are reported once.
const debounceWindow = 100 * time.Millisecond

// Reports yaml files that changed inside the watched directories,
// so hosts can reload presets while the game is running.
//
// Both channels are closed once the watcher stops.
type Watcher struct {
	// Paths of the yaml files that were written, created or renamed.
	Events chan string
	// Errors from the underlying file system watcher. Errors are
	// dropped while nobody is reading.
	Errors chan error

	fsWatcher *fsnotify.Watcher
	closing   chan struct{}
	closeOnce sync.Once
}

// Starts watching the given directories. Directories are not
// watched recursively.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		Events:    make(chan string, 16),
		Errors:    make(chan error, 1),
		fsWatcher: fsWatcher,
		closing:   make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Stops the watcher. Calling Close more than once is safe.
func (self *Watcher) Close() error {
	var err error
	self.closeOnce.Do(func() {
		close(self.closing)
		err = self.fsWatcher.Close()
	})
	return err
}

func (self *Watcher) run() {
	defer close(self.Events)
	defer close(self.Errors)

	lastSent := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-self.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !IsConfigFile(event.Name) {
				continue
			}

			// debounce editors that write in several steps
			now := time.Now()
			if sent, found := lastSent[event.Name]; found && now.Sub(sent) < debounceWindow {
				continue
			}
			lastSent[event.Name] = now

			select {
			case self.Events <- event.Name:
			case <-self.closing:
				return
			}
		case err, ok := <-self.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case self.Errors <- err:
			default:
			}
		case <-self.closing:
			return
		}
	}
}

// Reports whether the path has a yaml extension.
func IsConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
