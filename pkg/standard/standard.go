package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// Params is the standard-specific parameter bag. It shares the
// protocol bag's conventions: string values in attribute token form,
// absent keys falling back to the standard's documented defaults.
type Params = comms.Params

// Input carries everything a standard builder needs for one document:
// the partner classification, the optional contact block, the
// standard's own parameters, and the ordered communication protocol
// entries.
type Input struct {
	Classification string
	Contact        Contact
	Params         Params
	Protocols      []comms.Entry
}

// Builder constructs one standard's TradingPartner sub-document.
// Implementations hold only the protocol registry they compose
// communication options with; Build is otherwise a pure function of
// its input.
type Builder interface {
	// Standard returns the standard name in lowercase (e.g. "x12").
	Standard() string

	// Validate checks the standard's required parameters and value
	// shapes. It fails with a ValidationError before any output
	// exists.
	Validate(in Input) error

	// Build emits the standard's TradingPartner element. It assumes
	// Validate has passed; protocol-level validation still runs when
	// the communication block is composed.
	Build(in Input) (*etree.Element, error)
}

// Contact is the optional partner contact block. Empty fields are
// omitted from the output; a fully empty contact renders as a
// self-closing ContactInfo element.
type Contact struct {
	Name       string
	Email      string
	Phone      string
	Fax        string
	Address1   string
	Address2   string
	City       string
	State      string
	Country    string
	PostalCode string
}

func (c Contact) element() *etree.Element {
	el := etree.NewElement("ContactInfo")
	for _, f := range []struct{ attr, val string }{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"fax", c.Fax},
		{"address1", c.Address1},
		{"address2", c.Address2},
		{"city", c.City},
		{"state", c.State},
		{"country", c.Country},
		{"postalcode", c.PostalCode},
	} {
		if f.val != "" {
			el.CreateAttr(f.attr, f.val)
		}
	}
	return el
}

// newPartner starts the TradingPartner element every standard shares:
// classification and standard attributes plus the ContactInfo header.
func newPartner(standardName string, in Input) *etree.Element {
	tp := etree.NewElement("TradingPartner")
	tp.CreateAttr("classification", in.Classification)
	tp.CreateAttr("standard", standardName)
	tp.AddChild(in.Contact.element())
	return tp
}

// addCommunication composes the protocol entries and appends the
// standard's PartnerCommunication block. wrapper is the per-standard
// element name (e.g. "X12PartnerCommunication").
func addCommunication(tp *etree.Element, wrapper string, protocols *comms.Registry, entries []comms.Entry) error {
	opts, err := comms.Compose(protocols, entries)
	if err != nil {
		return err
	}
	pc := tp.CreateElement("PartnerCommunication")
	pc.CreateElement(wrapper).AddChild(opts)
	return nil
}

// addTrailer appends the empty DocumentTypes and Archiving blocks that
// close every TradingPartner element.
func addTrailer(tp *etree.Element) {
	tp.CreateElement("DocumentTypes")
	tp.CreateElement("Archiving")
}

// requireParams fails with a ValidationError for the first of keys
// absent from the bag.
func requireParams(standardName string, p Params, keys ...string) error {
	for _, k := range keys {
		if !p.Has(k) {
			return &ValidationError{
				Standard: standardName,
				Field:    k,
				Reason:   "is required",
			}
		}
	}
	return nil
}

// checkBools verifies that each of the given keys, when present, is a
// lowercase "true" or "false" token.
func checkBools(standardName string, p Params, keys ...string) error {
	for _, k := range keys {
		if !p.Has(k) {
			continue
		}
		if v := p[k]; v != "true" && v != "false" {
			return &ValidationError{
				Standard: standardName,
				Field:    k,
				Reason:   `must be "true" or "false"`,
			}
		}
	}
	return nil
}
