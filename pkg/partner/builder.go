package partner

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
	"github.com/sirosfoundation/go-tradingpartner/pkg/component"
	"github.com/sirosfoundation/go-tradingpartner/pkg/standard"
)

// Config configures a Builder. All fields are optional; zero values
// fall back to the built-in registries and the default logger.
type Config struct {
	// Standards resolves document standard builders. Defaults to the
	// built-in registry.
	Standards *standard.Registry

	// Protocols resolves communication protocol builders. Defaults to
	// the built-in registry.
	Protocols *comms.Registry

	// Logger for build diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Builder turns DocumentRequests into finished component documents.
// It is safe for concurrent use once constructed.
type Builder struct {
	standards *standard.Registry
	protocols *comms.Registry
	logger    *slog.Logger
}

// NewBuilder creates a Builder. cfg may be nil for the defaults.
func NewBuilder(cfg *Config) *Builder {
	if cfg == nil {
		cfg = &Config{}
	}
	b := &Builder{
		standards: cfg.Standards,
		protocols: cfg.Protocols,
		logger:    cfg.Logger,
	}
	if b.protocols == nil {
		b.protocols = comms.NewRegistry()
	}
	if b.standards == nil {
		b.standards = standard.NewRegistry(b.protocols)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Build produces the complete component document for req. Any
// validation or resolution failure returns before output exists; a
// partial document is never observable.
func (b *Builder) Build(req DocumentRequest) (string, error) {
	req.applyDefaults()
	if err := req.validate(); err != nil {
		return "", err
	}

	sb, err := b.standards.Resolve(req.Standard)
	if err != nil {
		return "", err
	}

	in := standard.Input{
		Classification: req.Classification,
		Contact:        req.Contact,
		Params:         standard.Params(req.StandardParameters),
		Protocols:      protocolEntries(req),
	}
	if err := sb.Validate(in); err != nil {
		return "", err
	}

	tp, err := sb.Build(in)
	if err != nil {
		return "", err
	}

	inner, err := serialize(tp)
	if err != nil {
		return "", err
	}

	doc := component.Wrap(component.Meta{
		Type:        "tradingpartner",
		Name:        req.Name,
		FolderPath:  req.Folder,
		Description: req.Description,
	}, inner)

	b.logger.Debug("built trading partner document",
		"standard", sb.Standard(),
		"name", req.Name,
		"protocols", len(req.CommunicationProtocols))
	return doc, nil
}

func protocolEntries(req DocumentRequest) []comms.Entry {
	entries := make([]comms.Entry, len(req.CommunicationProtocols))
	for i, name := range req.CommunicationProtocols {
		entries[i] = comms.Entry{
			Protocol: name,
			Params:   comms.Params(req.ProtocolParameters[name]),
		}
	}
	return entries
}

func serialize(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el)
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return s, nil
}
