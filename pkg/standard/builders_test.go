package standard

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

func render(t *testing.T, el *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(el)
	doc.Indent(2)
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return s
}

func testInput(params Params) Input {
	return Input{Classification: "tradingpartner", Params: params}
}

func TestContactInfoAttributeOrder(t *testing.T) {
	c := Contact{
		Name:       "ACME Corp",
		Email:      "edi@acme.example",
		City:       "Springfield",
		PostalCode: "62704",
	}

	out := render(t, c.element())
	assert.Contains(t, out, `name="ACME Corp"`)
	assert.Contains(t, out, `email="edi@acme.example"`)
	assert.NotContains(t, out, "phone=")
	assert.NotContains(t, out, "address1=")

	// fixed attribute order regardless of which fields are set
	name := strings.Index(out, "name=")
	email := strings.Index(out, "email=")
	city := strings.Index(out, "city=")
	postal := strings.Index(out, "postalcode=")
	assert.Less(t, name, email)
	assert.Less(t, email, city)
	assert.Less(t, city, postal)
}

func TestContactInfoEmpty(t *testing.T) {
	out := render(t, Contact{}.element())
	assert.Equal(t, "<ContactInfo/>", strings.TrimSpace(out))
}

func TestX12RequiresInterchangeId(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("x12")
	require.NoError(t, err)

	err = b.Validate(testInput(Params{}))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "x12", vErr.Standard)
	assert.Equal(t, "interchangeId", vErr.Field)
}

func TestX12Build(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("x12")
	require.NoError(t, err)

	in := testInput(Params{"interchangeId": "123456789"})
	require.NoError(t, b.Validate(in))

	el, err := b.Build(in)
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `classification="tradingpartner"`)
	assert.Contains(t, out, `standard="x12"`)
	assert.Contains(t, out, `interchangeid="123456789"`)
	assert.Contains(t, out, `interchangeidqual="01"`)
	assert.Contains(t, out, `testindicator="P"`)
	assert.Contains(t, out, `respagencycode="T"`)
	assert.Contains(t, out, `acknowledgementoption="donotackitem"`)
	assert.Contains(t, out, `segmentchar="newline"`)

	// Options precede ControlInfo; ISA precedes GS
	assert.Less(t, strings.Index(out, "<X12Options"), strings.Index(out, "<X12ControlInfo"))
	assert.Less(t, strings.Index(out, "<ISAControlInfo"), strings.Index(out, "<GSControlInfo"))

	// empty communication container and trailer are always present
	assert.Contains(t, out, "<X12PartnerCommunication>")
	assert.Contains(t, out, "<CommunicationOptions/>")
	assert.Contains(t, out, "<DocumentTypes/>")
	assert.Contains(t, out, "<Archiving/>")
}

func TestEdifactControlBlockOrder(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("edifact")
	require.NoError(t, err)

	el, err := b.Build(testInput(Params{}))
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `standard="edifact"`)
	assert.Contains(t, out, `syntaxId="UNOA"`)
	assert.Contains(t, out, `release="09B"`)

	unb := strings.Index(out, "<UNBControlInfo")
	ung := strings.Index(out, "<UNGControlInfo")
	unh := strings.Index(out, "<UNHControlInfo")
	require.GreaterOrEqual(t, unb, 0)
	assert.Less(t, unb, ung)
	assert.Less(t, ung, unh)
}

func TestHL7ControlBlockOrder(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("hl7")
	require.NoError(t, err)

	el, err := b.Build(testInput(Params{
		"application": "EPIC",
		"facility":    "GENERAL-HOSPITAL",
	}))
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `standard="hl7"`)
	assert.Contains(t, out, `acceptackoption="NE"`)
	assert.Contains(t, out, ">EPIC</Application>")
	assert.Contains(t, out, ">GENERAL-HOSPITAL</Facility>")
	assert.Contains(t, out, `processingId="P"`)
	assert.Contains(t, out, `versionId="v26"`)

	// MSH child sequence is schema-mandated
	positions := []int{
		strings.Index(out, "<Application"),
		strings.Index(out, "<Facility"),
		strings.Index(out, "<ProcessingId"),
		strings.Index(out, "<VersionId"),
		strings.Index(out, "<PrincipalLanguage"),
		strings.Index(out, "<MessageProfileIdentifier"),
		strings.Index(out, "<ResponsibleOrg"),
		strings.Index(out, "<NetworkAddress"),
	}
	for i := 1; i < len(positions); i++ {
		assert.Less(t, positions[i-1], positions[i], "MSH child %d out of order", i)
	}
}

func TestRosettaNetBlockOrder(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("rosettanet")
	require.NoError(t, err)

	el, err := b.Build(testInput(Params{}))
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `standard="rosettanet"`)
	assert.Contains(t, out, `partnerIdType="DUNS"`)
	assert.Contains(t, out, `usageCode="Test"`)

	// Options, then ControlInfo, then MessageOptions
	opts := strings.Index(out, "<RosettaNetOptions")
	control := strings.Index(out, "<RosettaNetControlInfo")
	msg := strings.Index(out, "<RosettaNetMessageOptions")
	require.GreaterOrEqual(t, opts, 0)
	assert.Less(t, opts, control)
	assert.Less(t, control, msg)
}

func TestCustomBuild(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("custom")
	require.NoError(t, err)

	el, err := b.Build(testInput(nil))
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `standard="edicustom"`)
	assert.Contains(t, out, "<CustomPartnerInfo/>")
	assert.Contains(t, out, "<CustomPartnerCommunication>")
}

func TestTradacomsBuild(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("tradacoms")
	require.NoError(t, err)

	el, err := b.Build(testInput(Params{}))
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `standard="tradacoms"`)
	assert.Contains(t, out, `segmentchar="singlequote"`)
	assert.Contains(t, out, "<STXControlInfo/>")
}

func TestOdetteBuild(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("odette")
	require.NoError(t, err)

	el, err := b.Build(testInput(Params{}))
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `standard="odette"`)
	assert.Contains(t, out, "<UNBControlInfo")
	assert.Contains(t, out, "<UNHControlInfo")
	assert.NotContains(t, out, "<UNGControlInfo")
}

func TestBuildEmbedsCommunication(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("x12")
	require.NoError(t, err)

	in := testInput(Params{"interchangeId": "123456789"})
	in.Protocols = []comms.Entry{
		{Protocol: "ftp", Params: comms.Params{"host": "ftp.acme.com"}},
		{Protocol: "disk", Params: comms.Params{}},
	}

	el, err := b.Build(in)
	require.NoError(t, err)

	out := render(t, el)
	assert.Contains(t, out, `host="ftp.acme.com"`)
	assert.Less(t, strings.Index(out, `method="ftp"`), strings.Index(out, `method="disk"`))

	// communication block sits between PartnerInfo and DocumentTypes
	assert.Less(t, strings.Index(out, "<PartnerInfo>"), strings.Index(out, "<PartnerCommunication>"))
	assert.Less(t, strings.Index(out, "<PartnerCommunication>"), strings.Index(out, "<DocumentTypes/>"))
}

func TestBuildPropagatesProtocolErrors(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("custom")
	require.NoError(t, err)

	in := testInput(nil)
	in.Protocols = []comms.Entry{{Protocol: "ftp", Params: comms.Params{}}}

	_, err = b.Build(in)
	var missErr *comms.MissingParameterError
	require.ErrorAs(t, err, &missErr)
	assert.Equal(t, "ftp", missErr.Protocol)
}

func TestValidateRejectsBadBooleans(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())
	b, err := reg.Resolve("edifact")
	require.NoError(t, err)

	err = b.Validate(testInput(Params{"includeUNA": "yes"}))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "edifact", vErr.Standard)
	assert.Equal(t, "includeUNA", vErr.Field)
}
