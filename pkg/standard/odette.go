package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// odetteBuilder emits the ODETTE TradingPartner sub-document. ODETTE
// shares EDIFACT's envelope options and UNB/UNH control blocks but
// carries no functional-group (UNG) segment.
type odetteBuilder struct {
	protocols *comms.Registry
}

func (*odetteBuilder) Standard() string { return "odette" }

func (*odetteBuilder) Validate(in Input) error {
	return checkBools("odette", in.Params,
		"filterAcknowledgements", "includeUNA",
		"rejectDuplicateInterchange", "ackRequest")
}

func (b *odetteBuilder) Build(in Input) (*etree.Element, error) {
	p := in.Params
	tp := newPartner("odette", in)

	info := tp.CreateElement("PartnerInfo").CreateElement("OdettePartnerInfo")

	opts := info.CreateElement("OdetteOptions")
	opts.CreateAttr("acknowledgementoption", p.Get("acknowledgementOption", "donotackitem"))
	opts.CreateAttr("compositeDelimiter", p.Get("compositeDelimiter", "colondelimited"))
	opts.CreateAttr("envelopeoption", p.Get("envelopeOption", "groupall"))
	opts.CreateAttr("fileDelimiter", p.Get("fileDelimiter", "plusdelimited"))
	opts.CreateAttr("filteracknowledgements", p.Get("filterAcknowledgements", "false"))
	opts.CreateAttr("includeUNA", p.Get("includeUNA", "false"))
	opts.CreateAttr("outboundValidationOption", p.Get("outboundValidationOption", "filterError"))
	opts.CreateAttr("rejectDuplicateInterchange", p.Get("rejectDuplicateInterchange", "false"))
	opts.CreateAttr("segmentchar", p.Get("segmentChar", "singlequote"))

	control := info.CreateElement("OdetteControlInfo")
	unb := control.CreateElement("UNBControlInfo")
	unb.CreateAttr("ackRequest", p.Get("ackRequest", "false"))
	unb.CreateAttr("interchangeIdQual", p.Get("interchangeIdQualifier", "NA"))
	unb.CreateAttr("priority", p.Get("priority", "NA"))
	unb.CreateAttr("refPassQual", p.Get("refPassQualifier", "NA"))
	unb.CreateAttr("syntaxId", p.Get("syntaxId", "UNOA"))
	unb.CreateAttr("syntaxVersion", p.Get("syntaxVersion", "1"))
	unb.CreateAttr("testIndicator", p.Get("testIndicator", "NA"))
	unh := control.CreateElement("UNHControlInfo")
	unh.CreateAttr("controllingAgency", p.Get("controllingAgency", "UN"))
	unh.CreateAttr("release", p.Get("release", "09B"))
	unh.CreateAttr("version", p.Get("version", "D"))

	if err := addCommunication(tp, "OdettePartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
