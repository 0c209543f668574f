package comms

import "github.com/beevik/etree"

// sftpBuilder emits the SFTP CommunicationOption. The host is
// required; the port defaults to 22.
type sftpBuilder struct{}

func (sftpBuilder) Protocol() string { return "sftp" }

func (sftpBuilder) Validate(p Params) error {
	if missing := p.missing("host"); len(missing) > 0 {
		return &MissingParameterError{Protocol: "sftp", Fields: missing}
	}
	if err := p.checkInts("sftp", "port", "maxFileCount"); err != nil {
		return err
	}
	return p.checkBools("sftp", "sshKeyAuth", "moveToForceOverride")
}

func (sftpBuilder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("sftp")

	sftp := settings.CreateElement("SFTPSettings")
	sftp.CreateAttr("host", p.Get("host", ""))
	sftp.CreateAttr("port", p.Get("port", "22"))

	auth := sftp.CreateElement("AuthSettings")
	auth.CreateAttr("user", p.Get("user", ""))

	proxy := sftp.CreateElement("ProxySettings")
	proxy.CreateAttr("host", p.Get("proxyHost", ""))
	proxy.CreateAttr("password", "")
	proxy.CreateAttr("port", p.Get("proxyPort", "0"))
	proxy.CreateAttr("proxyEnabled", p.Get("proxyEnabled", "false"))
	proxy.CreateAttr("type", p.Get("proxyType", "ATOM"))
	proxy.CreateAttr("user", p.Get("proxyUser", ""))

	ssh := sftp.CreateElement("SSHOptions")
	ssh.CreateAttr("dhKeySizeMax1024", p.Get("dhKeySizeMax1024", "true"))
	ssh.CreateAttr("sshkeyauth", p.Get("sshKeyAuth", "false"))

	get := newAction(actions, "Get")
	getAction := get.CreateElement("SFTPGetAction")
	getAction.CreateAttr("maxFileCount", p.Get("maxFileCount", "0"))
	getAction.CreateAttr("moveToForceOverride", p.Get("moveToForceOverride", "false"))
	getAction.CreateAttr("sftpaction", p.Get("getAction", "actionget"))
	addDataProcessing(get, "post")

	send := newAction(actions, "Send")
	sendAction := send.CreateElement("SFTPSendAction")
	sendAction.CreateAttr("moveToForceOverride", p.Get("moveToForceOverride", "false"))
	sendAction.CreateAttr("sftpaction", p.Get("sendAction", "actionputrename"))
	addDataProcessing(send, "pre")

	return opt, nil
}
