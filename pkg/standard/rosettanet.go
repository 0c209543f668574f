package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// rosettanetBuilder emits the RosettaNet TradingPartner sub-document.
// Its PartnerInfo block renders Options, ControlInfo and
// MessageOptions in exactly that order; the consuming schema rejects
// any other arrangement.
type rosettanetBuilder struct {
	protocols *comms.Registry
}

func (*rosettanetBuilder) Standard() string { return "rosettanet" }

func (*rosettanetBuilder) Validate(in Input) error {
	return checkBools("rosettanet", in.Params,
		"filterSignals", "outboundDocumentValidation",
		"rejectDuplicateTransactionId", "compressed",
		"encryptServiceHeader", "encrypted", "signed")
}

func (b *rosettanetBuilder) Build(in Input) (*etree.Element, error) {
	p := in.Params
	tp := newPartner("rosettanet", in)

	info := tp.CreateElement("PartnerInfo").CreateElement("RosettaNetPartnerInfo")

	opts := info.CreateElement("RosettaNetOptions")
	opts.CreateAttr("filtersignals", p.Get("filterSignals", "false"))
	opts.CreateAttr("outboundDocumentValidation", p.Get("outboundDocumentValidation", "false"))
	opts.CreateAttr("rejectDuplicateTransactionId", p.Get("rejectDuplicateTransactionId", "false"))
	opts.CreateAttr("version", p.Get("version", "v20"))

	control := info.CreateElement("RosettaNetControlInfo")
	control.CreateAttr("partnerIdType", p.Get("partnerIdType", "DUNS"))
	control.CreateAttr("usageCode", p.Get("usageCode", "Test"))

	msg := info.CreateElement("RosettaNetMessageOptions")
	msg.CreateAttr("compressed", p.Get("compressed", "false"))
	msg.CreateAttr("encryptServiceHeader", p.Get("encryptServiceHeader", "false"))
	msg.CreateAttr("encrypted", p.Get("encrypted", "false"))
	msg.CreateAttr("encryptionAlgorithm", p.Get("encryptionAlgorithm", "tripledes"))
	msg.CreateAttr("signed", p.Get("signed", "false"))
	msg.CreateAttr("signingDigestAlg", p.Get("signingDigestAlg", "SHA1"))

	if err := addCommunication(tp, "RosettaNetPartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
