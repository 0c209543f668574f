package comms

import "github.com/beevik/etree"

// diskBuilder emits the Disk CommunicationOption. All directories are
// optional; an unset directory means the partner's default working
// directory.
type diskBuilder struct{}

func (diskBuilder) Protocol() string { return "disk" }

func (diskBuilder) Validate(p Params) error {
	if err := p.checkInts("disk", "maxFileCount"); err != nil {
		return err
	}
	return p.checkBools("disk", "deleteAfterRead", "createDirectory")
}

func (diskBuilder) Build(p Params) (*etree.Element, error) {
	opt, settings, actions := newOption("disk")

	disk := settings.CreateElement("DiskSettings")
	disk.CreateAttr("directory", p.Get("directory", ""))

	get := newAction(actions, "Get")
	getAction := get.CreateElement("DiskGetAction")
	getAction.CreateAttr("deleteAfterRead", p.Get("deleteAfterRead", "false"))
	getAction.CreateAttr("fileFilter", p.Get("fileFilter", ""))
	getAction.CreateAttr("filterMatchType", p.Get("filterMatchType", "wildcard"))
	getAction.CreateAttr("getDirectory", p.Get("getDirectory", ""))
	getAction.CreateAttr("maxFileCount", p.Get("maxFileCount", "0"))
	addDataProcessing(get, "post")

	send := newAction(actions, "Send")
	sendAction := send.CreateElement("DiskSendAction")
	sendAction.CreateAttr("createDirectory", p.Get("createDirectory", "false"))
	sendAction.CreateAttr("sendDirectory", p.Get("sendDirectory", ""))
	sendAction.CreateAttr("writeOption", p.Get("writeOption", "unique"))
	addDataProcessing(send, "pre")

	return opt, nil
}
