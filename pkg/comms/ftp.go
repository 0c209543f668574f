package comms

import "github.com/beevik/etree"

// ftpBuilder emits the FTP CommunicationOption. The host is required;
// everything else falls back to the platform defaults (port 21,
// passive mode, binary-safe put-rename sends).
type ftpBuilder struct{}

func (ftpBuilder) Protocol() string { return "ftp" }

func (ftpBuilder) Validate(p Params) error {
	if missing := p.missing("host"); len(missing) > 0 {
		return &MissingParameterError{Protocol: "ftp", Fields: missing}
	}
	if err := p.checkInts("ftp", "port", "maxFileCount"); err != nil {
		return err
	}
	return p.checkBools("ftp", "clientAuth", "trustServerCert", "moveToForceOverride")
}

func (ftpBuilder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("ftp")

	ftp := settings.CreateElement("FTPSettings")
	ftp.CreateAttr("connectionMode", p.Get("connectionMode", "PASV"))
	ftp.CreateAttr("host", p.Get("host", ""))
	ftp.CreateAttr("port", p.Get("port", "21"))

	auth := ftp.CreateElement("AuthSettings")
	auth.CreateAttr("user", p.Get("user", ""))

	proxy := ftp.CreateElement("ProxySettings")
	proxy.CreateAttr("host", p.Get("proxyHost", ""))
	proxy.CreateAttr("password", "")
	proxy.CreateAttr("port", p.Get("proxyPort", "0"))
	proxy.CreateAttr("proxyEnabled", p.Get("proxyEnabled", "false"))
	proxy.CreateAttr("type", p.Get("proxyType", "ATOM"))
	proxy.CreateAttr("user", p.Get("proxyUser", ""))

	ssl := ftp.CreateElement("SSLOptions")
	ssl.CreateAttr("clientauth", p.Get("clientAuth", "false"))
	ssl.CreateAttr("trustServerCert", p.Get("trustServerCert", "false"))

	get := newAction(actions, "Get")
	getAction := get.CreateElement("FTPGetAction")
	getAction.CreateAttr("ftpaction", p.Get("getAction", "actionget"))
	getAction.CreateAttr("maxFileCount", p.Get("maxFileCount", "0"))
	getAction.CreateAttr("moveToForceOverride", p.Get("moveToForceOverride", "false"))
	addDataProcessing(get, "post")

	send := newAction(actions, "Send")
	sendAction := send.CreateElement("FTPSendAction")
	sendAction.CreateAttr("ftpaction", p.Get("sendAction", "actionputrename"))
	sendAction.CreateAttr("moveToForceOverride", p.Get("moveToForceOverride", "false"))
	addDataProcessing(send, "pre")

	return opt, nil
}
