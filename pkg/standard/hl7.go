package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// hl7Builder emits the HL7 TradingPartner sub-document. The MSH
// control block carries the fixed child sequence the HL7 schema
// mandates: Application, Facility, ProcessingId, VersionId,
// PrincipalLanguage, MessageProfileIdentifier, ResponsibleOrg,
// NetworkAddress. Application and Facility carry the sending system's
// identity as element text when supplied.
type hl7Builder struct {
	protocols *comms.Registry
}

func (*hl7Builder) Standard() string { return "hl7" }

func (*hl7Builder) Validate(in Input) error {
	return checkBools("hl7", in.Params, "filterAcknowledgements")
}

func (b *hl7Builder) Build(in Input) (*etree.Element, error) {
	p := in.Params
	tp := newPartner("hl7", in)

	info := tp.CreateElement("PartnerInfo").CreateElement("HL7PartnerInfo")

	opts := info.CreateElement("HL7Options")
	opts.CreateAttr("acceptackoption", p.Get("acceptAckOption", "NE"))
	opts.CreateAttr("batchoption", p.Get("batchOption", "none"))
	opts.CreateAttr("compositeDelimiter", p.Get("compositeDelimiter", "caratdelimited"))
	opts.CreateAttr("fileDelimiter", p.Get("fileDelimiter", "bardelimited"))
	opts.CreateAttr("filteracknowledgements", p.Get("filterAcknowledgements", "false"))
	opts.CreateAttr("outboundValidationOption", p.Get("outboundValidationOption", "filterError"))
	opts.CreateAttr("segmentchar", p.Get("segmentChar", "carriagereturn"))
	opts.CreateAttr("subCompositeDelimiter", p.Get("subCompositeDelimiter", "ampersanddelimited"))

	msh := info.CreateElement("HL7ControlInfo").CreateElement("MSHControlInfo")
	msh.CreateAttr("alternateCharSetHandlingScheme", p.Get("alternateCharSetHandlingScheme", ""))
	msh.CreateAttr("characterSet", p.Get("characterSet", ""))
	msh.CreateAttr("countryCode", p.Get("countryCode", ""))

	application := msh.CreateElement("Application")
	if v := p.Get("application", ""); v != "" {
		application.SetText(v)
	}
	facility := msh.CreateElement("Facility")
	if v := p.Get("facility", ""); v != "" {
		facility.SetText(v)
	}

	processing := msh.CreateElement("ProcessingId")
	processing.CreateAttr("processingId", p.Get("processingId", "P"))
	processing.CreateAttr("processingMode", p.Get("processingMode", "NOT_PRESENT"))

	version := msh.CreateElement("VersionId")
	version.CreateAttr("versionId", p.Get("versionId", "v26"))
	version.CreateElement("InternationalizationCode")
	version.CreateElement("InternationalizationVersionId")

	msh.CreateElement("PrincipalLanguage")
	msh.CreateElement("MessageProfileIdentifier")

	org := msh.CreateElement("ResponsibleOrg")
	org.CreateElement("OrgNameTypeCode")
	org.CreateElement("AssigningAuthority")
	org.CreateElement("AssigningFacility")

	msh.CreateElement("NetworkAddress")

	if err := addCommunication(tp, "HL7PartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
