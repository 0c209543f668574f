package standard

import (
	"sort"
	"strings"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// Registry maps standard names to builders. Populate it before first
// use; lookups after that point are safe for unbounded concurrent
// reads.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry populated with the built-in standard
// builders: custom, edifact, hl7, odette, rosettanet, tradacoms and
// x12. Each builder composes its communication block through the given
// protocol registry.
func NewRegistry(protocols *comms.Registry) *Registry {
	r := &Registry{builders: make(map[string]Builder)}
	for _, b := range []Builder{
		&customBuilder{protocols: protocols},
		&edifactBuilder{protocols: protocols},
		&hl7Builder{protocols: protocols},
		&odetteBuilder{protocols: protocols},
		&rosettanetBuilder{protocols: protocols},
		&tradacomsBuilder{protocols: protocols},
		&x12Builder{protocols: protocols},
	} {
		r.Register(b)
	}
	return r
}

// Register adds b under its standard name, replacing any existing
// builder for that name. Registration must complete before the first
// Resolve call.
func (r *Registry) Register(b Builder) {
	r.builders[strings.ToLower(b.Standard())] = b
}

// Resolve returns the builder for name. Matching is case-insensitive.
func (r *Registry) Resolve(name string) (Builder, error) {
	b, ok := r.builders[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownStandardError{Name: name, Known: r.Names()}
	}
	return b, nil
}

// Names returns the registered standard names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
