package comms

import "github.com/beevik/etree"

// mllpBuilder emits the MLLP CommunicationOption used by HL7 partners.
// The host is required; all timeouts default to 30 seconds.
type mllpBuilder struct{}

func (mllpBuilder) Protocol() string { return "mllp" }

func (mllpBuilder) Validate(p Params) error {
	if missing := p.missing("host"); len(missing) > 0 {
		return &MissingParameterError{Protocol: "mllp", Fields: missing}
	}
	return p.checkInts("mllp", "port", "timeout",
		"ackTimeout", "connectTimeout", "sendTimeout")
}

func (mllpBuilder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("mllp")

	mllp := settings.CreateElement("MLLPSettings")
	mllp.CreateAttr("host", p.Get("host", ""))
	mllp.CreateAttr("port", p.Get("port", "0"))
	mllp.CreateAttr("timeout", p.Get("timeout", "30000"))

	send := newAction(actions, "Send")
	sendAction := send.CreateElement("MLLPSendAction")
	sendAction.CreateAttr("ackTimeoutMillis", p.Get("ackTimeout", "30000"))
	sendAction.CreateAttr("connectTimeoutMillis", p.Get("connectTimeout", "30000"))
	sendAction.CreateAttr("sendTimeoutMillis", p.Get("sendTimeout", "30000"))
	addDataProcessing(send, "pre")

	return opt, nil
}
