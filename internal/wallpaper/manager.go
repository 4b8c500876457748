package wallpaper

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Manager is the daemon's session state: the directory being cycled, the
// current and queued wallpaper, and the cycling options. The embedded mutex
// guards every field; it is held only long enough to read or copy state,
// never across directory listings or the external apply call, so a slow
// tool can't block client requests.
type Manager struct {
	sync.Mutex
	directory string
	current   string
	next      string
	recursive bool
	random    bool
	index     int

	interval time.Duration
	setter   Setter

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager validates directory by listing it, queues the first wallpaper
// and signals a wake so Run applies it immediately.
func NewManager(directory string, recursive, random bool, interval time.Duration, setter Setter) (*Manager, error) {
	m := &Manager{
		interval: interval,
		setter:   setter,
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	if err := m.SetDirectory(directory, recursive, random); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) CurrentWallpaper() string {
	m.Lock()
	defer m.Unlock()
	return m.current
}

// NextWallpaper returns the wallpaper queued for the next cycle.
func (m *Manager) NextWallpaper() string {
	m.Lock()
	defer m.Unlock()
	return m.next
}

func (m *Manager) Directory() string {
	m.Lock()
	defer m.Unlock()
	return m.directory
}

// SetNextWallpaper queues path unconditionally and wakes the cycler.
// Validation is deferred to the apply step; a bogus path surfaces there.
func (m *Manager) SetNextWallpaper(path string) {
	m.Lock()
	m.next = path
	m.Unlock()
	m.Cycle()
}

// SetDirectory lists the new directory first so a bad path fails before any
// state changes. On success it commits the directory and option flags,
// queues a wallpaper from the fresh listing (first entry, or a random one)
// and wakes the cycler. An empty but valid directory is accepted; the
// queued wallpaper is left as is until files appear.
func (m *Manager) SetDirectory(path string, recursive, random bool) error {
	files, err := List(path, recursive)
	if err != nil {
		return err
	}

	index := 0
	if random && len(files) > 0 {
		index = rand.IntN(len(files))
	}

	m.Lock()
	m.directory = path
	m.recursive = recursive
	m.random = random
	m.index = index
	if len(files) > 0 {
		m.next = files[index]
	}
	m.Unlock()

	m.Cycle()
	return nil
}

// Cycle wakes the cycling loop. The channel holds at most one pending
// signal, so signaling while a wake is already queued is a no-op.
func (m *Manager) Cycle() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Stop terminates Run. Used on orderly shutdown and in tests; KILL lets the
// process exit instead.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Run is the cycling loop. It blocks until woken by Cycle or by the
// interval elapsing, advances one wallpaper, and goes back to waiting. It
// returns only on Stop (nil) or on a fatal error: the directory became
// unlistable, or the external tool rejected an apply.
func (m *Manager) Run() error {
	log.Info("Starting wallpaper cycler...")
	log.Infof("Wallpaper will cycle every %v", m.interval)

	for {
		select {
		case <-m.stop:
			log.Info("Wallpaper cycler stopped")
			return nil
		case <-m.wake:
		case <-time.After(m.interval):
		}

		if err := m.advance(); err != nil {
			return err
		}
	}
}

// advance performs one cycle: relist the directory, pick a new index,
// promote the queued wallpaper to current, queue a fresh one, and apply the
// now-current wallpaper outside the lock.
func (m *Manager) advance() error {
	m.Lock()
	directory := m.directory
	recursive := m.recursive
	random := m.random
	queued := m.next
	index := m.index
	m.Unlock()

	files, err := List(directory, recursive)
	if err != nil {
		return fmt.Errorf("reloading directory %s: %w", directory, err)
	}
	log.Debugf("Reloaded directory %s: %d files", directory, len(files))

	if len(files) == 0 {
		log.Warnf("Wallpaper directory %s is empty, nothing to cycle", directory)
		return nil
	}

	index = m.pickIndex(index, len(files), random)
	// Keep advancing while the pick equals the queued wallpaper, so a
	// duplicate name or a grown directory doesn't serve the same file
	// twice. Capped at one pass over the listing: a directory full of
	// identical names gets a repeat rather than an infinite loop.
	for tries := 0; files[index] == queued && tries < len(files); tries++ {
		index = m.pickIndex(index, len(files), random)
	}

	fresh := files[index]

	m.Lock()
	m.current = queued
	m.next = fresh
	m.index = index
	m.Unlock()

	log.Infof("Queued wallpaper: %s", fresh)

	if queued == "" {
		return nil
	}
	log.Infof("Setting wallpaper: %s", queued)
	if err := m.setter.Apply(queued); err != nil {
		return fmt.Errorf("applying wallpaper %s: %w", queued, err)
	}
	return nil
}

func (m *Manager) pickIndex(index, length int, random bool) int {
	if random {
		return rand.IntN(length)
	}
	return (index + 1) % length
}
