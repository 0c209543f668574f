package comms

import "github.com/beevik/etree"

// httpBuilder emits the HTTP CommunicationOption. The endpoint url is
// required; timeouts default to 15s connect / 60s read, matching the
// platform defaults.
type httpBuilder struct{}

func (httpBuilder) Protocol() string { return "http" }

func (httpBuilder) Validate(p Params) error {
	if missing := p.missing("url"); len(missing) > 0 {
		return &MissingParameterError{Protocol: "http", Fields: missing}
	}
	if err := p.checkInts("http", "connectTimeout", "readTimeout"); err != nil {
		return err
	}
	return p.checkBools("http", "clientAuth", "trustServerCert",
		"followRedirects", "returnErrors")
}

func (httpBuilder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("http")

	http := settings.CreateElement("HttpSettings")
	http.CreateAttr("authenticationType", p.Get("authenticationType", "NONE"))
	http.CreateAttr("connectTimeout", p.Get("connectTimeout", "15000"))
	http.CreateAttr("readTimeout", p.Get("readTimeout", "60000"))
	http.CreateAttr("url", p.Get("url", ""))

	auth := http.CreateElement("AuthSettings")
	auth.CreateAttr("user", p.Get("user", ""))

	ssl := http.CreateElement("SSLOptions")
	ssl.CreateAttr("clientauth", p.Get("clientAuth", "false"))
	ssl.CreateAttr("trustServerCert", p.Get("trustServerCert", "false"))

	get := newAction(actions, "Get")
	getAction := get.CreateElement("HttpGetAction")
	getAction.CreateAttr("dataContentType", p.Get("dataContentType", "application/xml"))
	getAction.CreateAttr("followRedirects", p.Get("followRedirects", "false"))
	getAction.CreateAttr("methodType", p.Get("getMethod", "GET"))
	getAction.CreateAttr("returnErrors", p.Get("returnErrors", "false"))
	addDataProcessing(get, "post")

	send := newAction(actions, "Send")
	sendAction := send.CreateElement("HttpSendAction")
	sendAction.CreateAttr("dataContentType", p.Get("dataContentType", "application/xml"))
	sendAction.CreateAttr("followRedirects", p.Get("followRedirects", "false"))
	sendAction.CreateAttr("methodType", p.Get("sendMethod", "POST"))
	sendAction.CreateAttr("returnErrors", p.Get("returnErrors", "false"))
	addDataProcessing(send, "pre")

	return opt, nil
}
