package comms

import "github.com/beevik/etree"

// oftpBuilder emits the ODETTE File Transfer Protocol CommunicationOption.
// All parameters are optional; the platform defaults leave the connection
// unconfigured until the partner exchange details are known.
type oftpBuilder struct{}

func (oftpBuilder) Protocol() string { return "oftp" }

func (oftpBuilder) Validate(p Params) error {
	if err := p.checkInts("oftp", "port", "cipherSuite"); err != nil {
		return err
	}
	return p.checkBools("oftp", "tls", "secureAuthentication")
}

func (oftpBuilder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("oftp")

	conn := settings.CreateElement("OFTPConnectionSettings")
	conn.CreateElement("myPartnerInfo")
	def := conn.CreateElement("defaultOFTPConnectionSettings")
	def.CreateAttr("host", p.Get("host", ""))
	def.CreateAttr("sfidciph", p.Get("cipherSuite", "0"))
	def.CreateAttr("ssidauth", p.Get("secureAuthentication", "false"))
	def.CreateAttr("tls", p.Get("tls", "false"))
	def.CreateElement("myPartnerInfo")

	listen := newAction(actions, "Listen")
	listenAction := listen.CreateElement("OFTPServerListenAction")
	addOFTPPartnerGroup(listenAction)
	listenOpts := listenAction.CreateElement("OFTPListenOptions")
	listenOpts.CreateAttr("operation", "LISTEN")
	gateway := listenOpts.CreateElement("GatewayPartnerGroup")
	gateway.CreateElement("myPartnerInfo")
	addDataProcessing(listen, "pre")
	addDataProcessing(listen, "post")

	get := newAction(actions, "Get")
	getAction := get.CreateElement("OFTPGetAction")
	addOFTPPartnerGroup(getAction)
	addDataProcessing(get, "pre")
	addDataProcessing(get, "post")

	send := newAction(actions, "Send")
	sendAction := send.CreateElement("OFTPSendAction")
	addOFTPPartnerGroup(sendAction)
	sendOpts := sendAction.CreateElement("OFTPSendOptions")
	sendOpts.CreateAttr("cd", "false")
	sendOpts.CreateAttr("operation", "SEND")
	sendOpts.CreateElement("defaultPartnerSettings").CreateAttr("cd", "false")
	addDataProcessing(send, "pre")
	addDataProcessing(send, "post")

	return opt, nil
}

// addOFTPPartnerGroup appends the partner group common to every OFTP action.
func addOFTPPartnerGroup(action *etree.Element) {
	group := action.CreateElement("OFTPPartnerGroup")
	group.CreateElement("myCompanyInfo")
	for _, name := range []string{"myPartnerInfo", "defaultPartnerInfo"} {
		info := group.CreateElement(name)
		info.CreateAttr("sfidsec-encrypt", "false")
		info.CreateAttr("sfidsec-sign", "false")
		info.CreateAttr("sfidsign", "false")
		info.CreateAttr("ssidcmpr", "false")
	}
}
