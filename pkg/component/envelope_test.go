package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	out := Wrap(Meta{
		Type:        "tradingpartner",
		Name:        "ACME Corp",
		FolderPath:  "Home",
		Description: "Primary vendor",
	}, "<TradingPartner/>")

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns:bns="http://api.platform.boomi.com/"`)
	assert.Contains(t, out, `name="ACME Corp"`)
	assert.Contains(t, out, `type="tradingpartner"`)
	assert.Contains(t, out, `folderName="Home"`)
	assert.Contains(t, out, "<bns:encryptedValues/>")
	assert.Contains(t, out, "<bns:description>Primary vendor</bns:description>")
	assert.Contains(t, out, "<TradingPartner/>")
	assert.Contains(t, out, "<bns:processOverrides/>")

	// fixed envelope child order
	enc := strings.Index(out, "<bns:encryptedValues/>")
	desc := strings.Index(out, "<bns:description>")
	obj := strings.Index(out, "<bns:object>")
	over := strings.Index(out, "<bns:processOverrides/>")
	assert.Less(t, enc, desc)
	assert.Less(t, desc, obj)
	assert.Less(t, obj, over)
}

func TestWrapEscapesMetadata(t *testing.T) {
	out := Wrap(Meta{
		Type:        "tradingpartner",
		Name:        `ACME "Corp" & <Sons>`,
		FolderPath:  "Partners/Vendors",
		Description: "a < b & c",
	}, "<TradingPartner/>")

	assert.Contains(t, out, `name="ACME &quot;Corp&quot; &amp; &lt;Sons&gt;"`)
	assert.Contains(t, out, `folderName="Partners/Vendors"`)
	assert.Contains(t, out, "<bns:description>a &lt; b &amp; c</bns:description>")
}

func TestWrapInnerVerbatim(t *testing.T) {
	// the inner fragment is already escaped and must not be touched
	inner := `<TradingPartner name="A &amp; B"/>` + "\n"
	out := Wrap(Meta{Type: "tradingpartner", Name: "p", FolderPath: "Home"}, inner)

	assert.Contains(t, out, `name="A &amp; B"`)
	assert.NotContains(t, out, "&amp;amp;")
}

func TestWrapEmptyDescription(t *testing.T) {
	out := Wrap(Meta{Type: "tradingpartner", Name: "p", FolderPath: "Home"}, "<X/>")
	assert.Contains(t, out, "<bns:description></bns:description>")
}
