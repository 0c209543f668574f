package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// x12Builder emits the X12 TradingPartner sub-document. The ISA
// interchange id is required; every other control value falls back to
// the platform defaults (qualifier 01, production test indicator,
// agency code T).
type x12Builder struct {
	protocols *comms.Registry
}

func (*x12Builder) Standard() string { return "x12" }

func (*x12Builder) Validate(in Input) error {
	if err := requireParams("x12", in.Params, "interchangeId"); err != nil {
		return err
	}
	return checkBools("x12", in.Params,
		"filterAcknowledgements", "outboundInterchangeValidation",
		"rejectDuplicateInterchange", "ackRequested")
}

func (b *x12Builder) Build(in Input) (*etree.Element, error) {
	p := in.Params
	tp := newPartner("x12", in)

	info := tp.CreateElement("PartnerInfo").CreateElement("X12PartnerInfo")

	opts := info.CreateElement("X12Options")
	opts.CreateAttr("acknowledgementoption", p.Get("acknowledgementOption", "donotackitem"))
	opts.CreateAttr("envelopeoption", p.Get("envelopeOption", "groupall"))
	opts.CreateAttr("fileDelimiter", p.Get("fileDelimiter", "stardelimited"))
	opts.CreateAttr("filteracknowledgements", p.Get("filterAcknowledgements", "false"))
	opts.CreateAttr("outboundInterchangeValidation", p.Get("outboundInterchangeValidation", "false"))
	opts.CreateAttr("outboundValidationOption", p.Get("outboundValidationOption", "filterError"))
	opts.CreateAttr("rejectDuplicateInterchange", p.Get("rejectDuplicateInterchange", "false"))
	opts.CreateAttr("segmentchar", p.Get("segmentChar", "newline"))

	control := info.CreateElement("X12ControlInfo")
	isa := control.CreateElement("ISAControlInfo")
	isa.CreateAttr("ackrequested", p.Get("ackRequested", "false"))
	isa.CreateAttr("authorinfoqual", p.Get("authInfoQualifier", "00"))
	isa.CreateAttr("interchangeid", p.Get("interchangeId", ""))
	isa.CreateAttr("interchangeidqual", p.Get("interchangeIdQualifier", "01"))
	isa.CreateAttr("securityinfoqual", p.Get("securityInfoQualifier", "00"))
	isa.CreateAttr("testindicator", p.Get("testIndicator", "P"))
	gs := control.CreateElement("GSControlInfo")
	gs.CreateAttr("respagencycode", p.Get("respAgencyCode", "T"))

	if err := addCommunication(tp, "X12PartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
