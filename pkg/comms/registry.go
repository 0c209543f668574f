package comms

import (
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// Builder constructs one protocol's CommunicationOption sub-document
// from a flat parameter bag. Implementations are stateless; Build is a
// pure function of its parameters.
type Builder interface {
	// Protocol returns the protocol name in lowercase (e.g. "ftp").
	Protocol() string

	// Validate checks protocol-specific required fields and value
	// shapes. It fails with a MissingParameterError or ValidationError
	// before any output exists.
	Validate(p Params) error

	// Build emits the protocol's CommunicationOption element. It
	// assumes Validate has passed.
	Build(p Params) (*etree.Element, error)
}

// Registry maps protocol names to builders. Populate it before first
// use; lookups after that point are safe for unbounded concurrent
// reads.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry populated with the built-in protocol
// builders: as2, disk, ftp, http, mllp, oftp and sftp.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}
	for _, b := range []Builder{
		as2Builder{},
		diskBuilder{},
		ftpBuilder{},
		httpBuilder{},
		mllpBuilder{},
		oftpBuilder{},
		sftpBuilder{},
	} {
		r.Register(b)
	}
	return r
}

// Register adds b under its protocol name, replacing any existing
// builder for that name. Registration must complete before the first
// Resolve call.
func (r *Registry) Register(b Builder) {
	r.builders[strings.ToLower(b.Protocol())] = b
}

// Resolve returns the builder for name. Matching is case-insensitive.
func (r *Registry) Resolve(name string) (Builder, error) {
	b, ok := r.builders[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownProtocolError{Name: name, Known: r.Names()}
	}
	return b, nil
}

// Names returns the registered protocol names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
