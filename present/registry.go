package present

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/pxl"
)

// Options configures a new output.
type Options struct {
	// Width and Height are the output size in pixels.
	Width, Height int

	// Sink receives each finished frame. It may be nil.
	Sink FrameSink
}

// Factory opens an output.
type Factory func(opts Options) (pxl.Presenter, error)

// Backend describes one kind of output.
type Backend struct {
	Name     string
	Priority int // higher is tried first
	Open     Factory

	// Probe reports whether the backend can run on this system.
	// A nil Probe means always.
	Probe func() bool
}

func (b *Backend) usable() bool {
	return b.Probe == nil || b.Probe()
}

var (
	// ErrNoBackend is returned by Open when no registered backend can run.
	ErrNoBackend = errors.New("present: no usable backend")

	// ErrUnknownBackend is returned by Open for a name nobody registered.
	ErrUnknownBackend = errors.New("present: unknown backend")

	// ErrBackendUnusable is returned by Open for a backend whose probe fails.
	ErrBackendUnusable = errors.New("present: backend not usable here")

	// ErrInvalidBackend is returned by Add for a backend without a name
	// or an Open function.
	ErrInvalidBackend = errors.New("present: invalid backend")

	// ErrClosed is returned when a closed output is flipped.
	ErrClosed = errors.New("present: output closed")
)

// Registry is a set of backends ordered by descending priority, then name.
// The zero value is empty and ready to use.
type Registry struct {
	mu       sync.Mutex
	backends []Backend
}

// Default holds the built-in "image" backend and anything added with the
// package-level Add.
var Default = &Registry{}

// Add registers b, replacing a backend of the same name.
func (r *Registry) Add(b Backend) error {
	if b.Name == "" || b.Open == nil {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, b.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backends = slices.DeleteFunc(r.backends, func(o Backend) bool { return o.Name == b.Name })
	r.backends = append(r.backends, b)
	slices.SortStableFunc(r.backends, func(x, y Backend) int {
		if c := cmp.Compare(y.Priority, x.Priority); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})
	return nil
}

// Remove unregisters the named backend and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.backends)
	r.backends = slices.DeleteFunc(r.backends, func(b Backend) bool { return b.Name == name })
	return len(r.backends) != n
}

// Names lists the registered backends in the order Open tries them.
// With usableOnly, backends whose probe fails are left out.
func (r *Registry) Names(usableOnly bool) []string {
	var names []string
	for _, b := range r.snapshot() {
		if usableOnly && !b.usable() {
			continue
		}
		names = append(names, b.Name)
	}
	return names
}

// Open creates an output with the named backend. An empty name tries every
// usable backend in order and returns the first that opens; the failures of
// the others are logged and, if all fail, joined into the error.
func (r *Registry) Open(name string, opts Options) (pxl.Presenter, error) {
	backends := r.snapshot()
	if name != "" {
		i := slices.IndexFunc(backends, func(b Backend) bool { return b.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
		if !backends[i].usable() {
			return nil, fmt.Errorf("%w: %q", ErrBackendUnusable, name)
		}
		return backends[i].Open(opts)
	}

	var errs []error
	for _, b := range backends {
		if !b.usable() {
			continue
		}
		p, err := b.Open(opts)
		if err == nil {
			pxl.Logger().Debug("present: output opened", "backend", b.Name, "width", opts.Width, "height", opts.Height)
			return p, nil
		}
		pxl.Logger().Warn("present: backend failed", "backend", b.Name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", b.Name, err))
	}
	if len(errs) == 0 {
		return nil, ErrNoBackend
	}
	return nil, errors.Join(errs...)
}

func (r *Registry) snapshot() []Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.backends)
}

// Add registers b with the Default registry.
func Add(b Backend) error {
	return Default.Add(b)
}

// Open opens an output from the Default registry. See Registry.Open.
func Open(name string, opts Options) (pxl.Presenter, error) {
	return Default.Open(name, opts)
}

func openImage(opts Options) (pxl.Presenter, error) {
	p := NewImagePresenter(opts.Width, opts.Height)
	p.SetSink(opts.Sink)
	return p, nil
}

func init() {
	_ = Default.Add(Backend{Name: "image", Priority: 10, Open: openImage})
}
