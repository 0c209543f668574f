package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-tradingpartner/pkg/comms"
)

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())

	tests := []struct {
		name     string
		standard string
	}{
		{"lowercase", "x12"},
		{"uppercase", "X12"},
		{"mixed case", "Edifact"},
		{"hl7", "HL7"},
		{"rosettanet", "RosettaNet"},
		{"custom", "custom"},
		{"tradacoms", "tradacoms"},
		{"odette", "ODETTE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := reg.Resolve(tt.standard)
			require.NoError(t, err)
			require.NotNil(t, b)
		})
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())

	_, err := reg.Resolve("edifax")
	require.Error(t, err)

	var unknownErr *UnknownStandardError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "edifax", unknownErr.Name)
	assert.Contains(t, unknownErr.Known, "edifact")
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry(comms.NewRegistry())

	assert.Equal(t, []string{
		"custom", "edifact", "hl7", "odette", "rosettanet", "tradacoms", "x12",
	}, reg.Names())
}
