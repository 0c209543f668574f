package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// customBuilder emits the custom-format TradingPartner sub-document.
// The standard attribute renders as "edicustom" and the PartnerInfo
// block is empty; only the shared fields, contact block and
// communication protocols carry content.
type customBuilder struct {
	protocols *comms.Registry
}

func (*customBuilder) Standard() string { return "custom" }

func (*customBuilder) Validate(Input) error { return nil }

func (b *customBuilder) Build(in Input) (*etree.Element, error) {
	tp := newPartner("edicustom", in)

	tp.CreateElement("PartnerInfo").CreateElement("CustomPartnerInfo")

	if err := addCommunication(tp, "CustomPartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
