package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// edifactBuilder emits the EDIFACT TradingPartner sub-document. No
// parameter is mandatory beyond the shared fields; the control blocks
// default to the UNOA syntax, D.09B release envelope. The UNB, UNG and
// UNH control blocks render in that fixed order.
type edifactBuilder struct {
	protocols *comms.Registry
}

func (*edifactBuilder) Standard() string { return "edifact" }

func (*edifactBuilder) Validate(in Input) error {
	return checkBools("edifact", in.Params,
		"filterAcknowledgements", "includeUNA", "rejectDuplicateInterchange",
		"ackRequest", "useFunctionalGroups")
}

func (b *edifactBuilder) Build(in Input) (*etree.Element, error) {
	p := in.Params
	tp := newPartner("edifact", in)

	info := tp.CreateElement("PartnerInfo").CreateElement("EdifactPartnerInfo")

	opts := info.CreateElement("EdifactOptions")
	opts.CreateAttr("acknowledgementoption", p.Get("acknowledgementOption", "donotackitem"))
	opts.CreateAttr("compositeDelimiter", p.Get("compositeDelimiter", "colondelimited"))
	opts.CreateAttr("envelopeoption", p.Get("envelopeOption", "groupall"))
	opts.CreateAttr("fileDelimiter", p.Get("fileDelimiter", "plusdelimited"))
	opts.CreateAttr("filteracknowledgements", p.Get("filterAcknowledgements", "false"))
	opts.CreateAttr("includeUNA", p.Get("includeUNA", "false"))
	opts.CreateAttr("outboundValidationOption", p.Get("outboundValidationOption", "filterError"))
	opts.CreateAttr("rejectDuplicateInterchange", p.Get("rejectDuplicateInterchange", "false"))
	opts.CreateAttr("segmentchar", p.Get("segmentChar", "singlequote"))

	control := info.CreateElement("EdifactControlInfo")
	unb := control.CreateElement("UNBControlInfo")
	unb.CreateAttr("ackRequest", p.Get("ackRequest", "false"))
	unb.CreateAttr("interchangeIdQual", p.Get("interchangeIdQualifier", "NA"))
	unb.CreateAttr("priority", p.Get("priority", "NA"))
	unb.CreateAttr("refPassQual", p.Get("refPassQualifier", "NA"))
	unb.CreateAttr("syntaxId", p.Get("syntaxId", "UNOA"))
	unb.CreateAttr("syntaxVersion", p.Get("syntaxVersion", "1"))
	unb.CreateAttr("testIndicator", p.Get("testIndicator", "NA"))
	ung := control.CreateElement("UNGControlInfo")
	ung.CreateAttr("applicationIdQual", p.Get("applicationIdQualifier", "NA"))
	ung.CreateAttr("useFunctionalGroups", p.Get("useFunctionalGroups", "false"))
	unh := control.CreateElement("UNHControlInfo")
	unh.CreateAttr("controllingAgency", p.Get("controllingAgency", "UN"))
	unh.CreateAttr("release", p.Get("release", "09B"))
	unh.CreateAttr("version", p.Get("version", "D"))

	if err := addCommunication(tp, "EdifactPartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
