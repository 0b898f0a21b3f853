package backend

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownBackend = errors.New("unknown mixer backend")

// Backend describes a video mixer that places the two comparison panes on
// the output canvas.
type Backend interface {
	// GetName returns the backend name used in settings and on the CLI
	GetName() string

	// GetDescription returns a one-line human readable description
	GetDescription() string

	// GetMixerElement returns the element that receives pad positions
	GetMixerElement() string

	// SupportsCrop reports whether the mixer pads accept crop properties.
	// Backends without it crop through a separate videocrop element and
	// cannot crop a pane away entirely.
	SupportsCrop() bool
}

var backends = make(map[string]Backend)

// Register adds a backend to the registry
func Register(b Backend) {
	backends[b.GetName()] = b
}

// Get returns a backend by name
func Get(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
	}
	return b, nil
}

// GetSupportedBackends returns the sorted list of registered backend names
func GetSupportedBackends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
