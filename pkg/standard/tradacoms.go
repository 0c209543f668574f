package standard

import (
	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

// tradacomsBuilder emits the TRADACOMS TradingPartner sub-document.
// TRADACOMS carries only delimiter options and an empty STX control
// block.
type tradacomsBuilder struct {
	protocols *comms.Registry
}

func (*tradacomsBuilder) Standard() string { return "tradacoms" }

func (*tradacomsBuilder) Validate(Input) error { return nil }

func (b *tradacomsBuilder) Build(in Input) (*etree.Element, error) {
	p := in.Params
	tp := newPartner("tradacoms", in)

	info := tp.CreateElement("PartnerInfo").CreateElement("TradacomsPartnerInfo")

	opts := info.CreateElement("TradacomsOptions")
	opts.CreateAttr("compositeDelimiter", p.Get("compositeDelimiter", "colondelimited"))
	opts.CreateAttr("fileDelimiter", p.Get("fileDelimiter", "plusdelimited"))
	opts.CreateAttr("segmentchar", p.Get("segmentChar", "singlequote"))

	info.CreateElement("TradacomsControlInfo").CreateElement("STXControlInfo")

	if err := addCommunication(tp, "TradacomsPartnerCommunication", b.protocols, in.Protocols); err != nil {
		return nil, err
	}
	addTrailer(tp)
	return tp, nil
}
