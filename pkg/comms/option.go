package comms

import "github.com/beevik/etree"

// newOption creates the common CommunicationOption scaffolding shared
// by every protocol: the option element itself, the SettingsObject the
// protocol settings go into, and the ActionObjects container.
func newOption(method string) (opt, settings, actions *etree.Element) {
	opt = etree.NewElement("CommunicationOption")
	opt.CreateAttr("commOption", "default")
	opt.CreateAttr("method", method)

	cs := opt.CreateElement("CommunicationSettings")
	cs.CreateAttr("docType", "default")

	settings = cs.CreateElement("SettingsObject")
	settings.CreateAttr("useMyTradingPartnerSettings", "false")

	actions = cs.CreateElement("ActionObjects")
	return opt, settings, actions
}

// newAction appends an ActionObject to the ActionObjects container.
// typ is "Get", "Send" or "Listen"; AS2 and MLLP use a single untyped
// action object and pass "".
func newAction(actions *etree.Element, typ string) *etree.Element {
	a := actions.CreateElement("ActionObject")
	if typ != "" {
		a.CreateAttr("type", typ)
	}
	a.CreateAttr("useMyTradingPartnerOptions", "false")
	return a
}

// addDataProcessing appends the DataProcessing block actions carry for
// the given sequence ("pre" or "post").
func addDataProcessing(action *etree.Element, sequence string) {
	dp := action.CreateElement("DataProcessing")
	dp.CreateAttr("sequence", sequence)
	dp.CreateElement("dataprocess")
}
