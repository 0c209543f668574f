package partner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-tradingpartner/pkg/standard"
)

// Classification values accepted on a DocumentRequest.
const (
	ClassificationPartner   = "tradingpartner"
	ClassificationMyCompany = "mytradingpartner"
)

// DocumentRequest describes one trading partner document to build.
type DocumentRequest struct {
	// Standard names the document standard: x12, edifact, hl7,
	// rosettanet, custom, tradacoms or odette. Case-insensitive.
	Standard string `yaml:"standard"`

	// Name is the partner component name. Required.
	Name string `yaml:"name"`

	// Folder is the slash-delimited folder path the component is
	// filed under. Defaults to "Home".
	Folder string `yaml:"folder"`

	// Classification is "tradingpartner" for an external partner or
	// "mytradingpartner" for the caller's own organization. Defaults
	// to "tradingpartner".
	Classification string `yaml:"classification"`

	// Description is free text carried in the envelope.
	Description string `yaml:"description"`

	// StandardParameters carries the standard-specific settings
	// (e.g. interchangeId for X12).
	StandardParameters map[string]string `yaml:"standardParameters"`

	// Contact is the optional partner contact block.
	Contact standard.Contact `yaml:"contact"`

	// CommunicationProtocols lists the transport protocols in the
	// order they appear in the output.
	CommunicationProtocols []string `yaml:"communicationProtocols"`

	// ProtocolParameters maps a protocol name to its settings bag.
	ProtocolParameters map[string]map[string]string `yaml:"protocolParameters"`
}

func (r *DocumentRequest) applyDefaults() {
	if r.Folder == "" {
		r.Folder = "Home"
	}
	if r.Classification == "" {
		r.Classification = ClassificationPartner
	}
}

func (r *DocumentRequest) validate() error {
	if r.Standard == "" {
		return &standard.ValidationError{
			Standard: r.Standard, Field: "standard", Reason: "is required",
		}
	}
	if r.Name == "" {
		return &standard.ValidationError{
			Standard: r.Standard, Field: "name", Reason: "must not be empty",
		}
	}
	if c := r.Classification; c != ClassificationPartner && c != ClassificationMyCompany {
		return &standard.ValidationError{
			Standard: r.Standard, Field: "classification",
			Reason: fmt.Sprintf("must be %q or %q", ClassificationPartner, ClassificationMyCompany),
		}
	}
	return nil
}

// ParseRequest decodes a YAML document request.
func ParseRequest(data []byte) (*DocumentRequest, error) {
	var req DocumentRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse document request: %w", err)
	}
	return &req, nil
}

// LoadRequest reads and decodes a YAML document request from path.
func LoadRequest(path string) (*DocumentRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}
	return ParseRequest(data)
}
