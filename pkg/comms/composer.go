package comms

import "github.com/beevik/etree"

// Entry pairs a protocol name with its parameters. Entries are rendered
// in the order supplied by the caller.
type Entry struct {
	Protocol string
	Params   Params
}

// Compose resolves each entry against the registry and assembles the
// CommunicationOptions container. Every builder is validated before any
// option is rendered, so a bad entry never produces partial output. An
// empty entry list yields an empty container.
func Compose(reg *Registry, entries []Entry) (*etree.Element, error) {
	resolved := make([]Builder, len(entries))
	for i, e := range entries {
		b, err := reg.Resolve(e.Protocol)
		if err != nil {
			return nil, err
		}
		if err := b.Validate(e.Params); err != nil {
			return nil, err
		}
		resolved[i] = b
	}

	container := etree.NewElement("CommunicationOptions")
	for i, e := range entries {
		opt, err := resolved[i].Build(e.Params)
		if err != nil {
			return nil, err
		}
		container.AddChild(opt)
	}
	return container, nil
}
