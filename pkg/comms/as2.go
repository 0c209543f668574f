package comms

import "github.com/beevik/etree"

// as2Builder emits the AS2 CommunicationOption. Both AS2 identifiers
// are required: identifier names this side of the exchange,
// partnerIdentifier the remote partner. Message and MDN options
// default to the platform's unsigned, unencrypted baseline.
type as2Builder struct{}

func (as2Builder) Protocol() string { return "as2" }

func (as2Builder) Validate(p Params) error {
	if missing := p.missing("identifier", "partnerIdentifier"); len(missing) > 0 {
		return &MissingParameterError{Protocol: "as2", Fields: missing}
	}
	if err := p.checkInts("as2", "duplicateCheckCount", "maxDocumentCount"); err != nil {
		return err
	}
	return p.checkBools("as2", "signed", "encrypted", "compressed",
		"requestMDN", "mdnSigned", "failOnNegativeMDN", "basicAuthEnabled",
		"rejectDuplicateMessageId")
}

func (as2Builder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("as2")

	server := settings.CreateElement("AS2ServerSettings")
	server.CreateAttr("useSharedServer", p.Get("useSharedServer", "true"))
	dps := server.CreateElement("defaultPartnerSettings")
	dps.CreateAttr("authenticationType", p.Get("authenticationType", "BASIC"))
	dps.CreateAttr("clientsslAlias", p.Get("clientSSLAlias", ""))
	dps.CreateAttr("url", p.Get("url", ""))
	dps.CreateAttr("verifyHostname", p.Get("verifyHostname", "true"))
	auth := dps.CreateElement("AuthSettings")
	auth.CreateAttr("password", "")
	auth.CreateAttr("user", p.Get("user", ""))

	action := newAction(actions, "")
	partnerObj := action.CreateElement("AS2PartnerObject")

	partnerInfo := partnerObj.CreateElement("partnerInfo")
	partnerInfo.CreateAttr("as2Id", p.Get("partnerIdentifier", ""))
	partnerInfo.CreateAttr("encryptAlias", p.Get("encryptAlias", ""))
	partnerInfo.CreateAttr("mdnAlias", p.Get("mdnAlias", ""))
	partnerInfo.CreateAttr("numberOfMessagesToCheckForDuplicates", p.Get("duplicateCheckCount", "100000"))
	partnerInfo.CreateAttr("rejectDuplicateMessageId", p.Get("rejectDuplicateMessageId", "false"))
	partnerInfo.CreateAttr("signAlias", p.Get("signAlias", ""))
	partnerInfo.CreateElement("ListenAuthSettings")
	partnerInfo.CreateElement("ListenAttachmentSettings")

	defaultInfo := partnerObj.CreateElement("defaultPartnerInfo")
	defaultInfo.CreateAttr("as2Id", p.Get("identifier", ""))
	defaultInfo.CreateAttr("basicAuthEnabled", p.Get("basicAuthEnabled", "false"))
	defaultInfo.CreateAttr("numberOfMessagesToCheckForDuplicates", p.Get("duplicateCheckCount", "100000"))
	defaultInfo.CreateAttr("rejectDuplicateMessageId", p.Get("rejectDuplicateMessageId", "true"))
	defaultInfo.CreateAttr("useAllowedIpAddresses", p.Get("useAllowedIpAddresses", "false"))
	defaultInfo.CreateElement("ListenAuthSettings")
	defaultInfo.CreateElement("ListenAttachmentSettings")

	msgOpts := partnerObj.CreateElement("AS2MessageOptions")
	msgOpts.CreateAttr("attachmentOption", p.Get("attachmentOption", "BATCH"))
	msgOpts.CreateAttr("compressed", p.Get("compressed", "false"))
	msgOpts.CreateAttr("dataContentType", p.Get("dataContentType", "textplain"))
	msgOpts.CreateAttr("enabledFoldedHeaders", p.Get("enabledFoldedHeaders", "false"))
	msgOpts.CreateAttr("encrypted", p.Get("encrypted", "false"))
	msgOpts.CreateAttr("encryptionAlgorithm", p.Get("encryptionAlgorithm", "tripledes"))
	msgOpts.CreateAttr("maxDocumentCount", p.Get("maxDocumentCount", "1"))
	msgOpts.CreateAttr("multipleAttachments", p.Get("multipleAttachments", "false"))
	msgOpts.CreateAttr("signed", p.Get("signed", "false"))
	msgOpts.CreateAttr("signingDigestAlg", p.Get("signingDigestAlg", "SHA1"))

	mdnOpts := partnerObj.CreateElement("AS2MDNOptions")
	mdnOpts.CreateAttr("externalURL", p.Get("mdnExternalURL", ""))
	mdnOpts.CreateAttr("failOnNegativeMDN", p.Get("failOnNegativeMDN", "false"))
	mdnOpts.CreateAttr("mdnDigestAlg", p.Get("mdnDigestAlg", "SHA1"))
	mdnOpts.CreateAttr("requestMDN", p.Get("requestMDN", "false"))
	mdnOpts.CreateAttr("signed", p.Get("mdnSigned", "false"))
	mdnOpts.CreateAttr("synchronous", p.Get("mdnSynchronous", "sync"))
	mdnOpts.CreateAttr("useExternalURL", p.Get("useExternalURL", "false"))
	mdnOpts.CreateAttr("useSSL", p.Get("useSSL", "false"))

	addDataProcessing(action, "pre")
	addDataProcessing(action, "post")

	return opt, nil
}
