package comms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsGet(t *testing.T) {
	p := Params{"host": "ftp.example.com", "port": ""}

	assert.Equal(t, "ftp.example.com", p.Get("host", "fallback"))
	assert.Equal(t, "21", p.Get("port", "21"), "empty value falls back to default")
	assert.Equal(t, "21", p.Get("absent", "21"))
}

func TestParamsMissing(t *testing.T) {
	p := Params{"host": "ftp.example.com", "user": ""}

	assert.Nil(t, p.missing("host"))
	assert.Equal(t, []string{"user", "port"}, p.missing("host", "user", "port"))
}

func TestParamsCheckInts(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{"port": "2121"}, false},
		{"absent key skipped", Params{}, false},
		{"negative is still an integer", Params{"port": "-1"}, false},
		{"not a number", Params{"port": "twenty-one"}, true},
		{"float rejected", Params{"port": "21.5"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.checkInts("ftp", "port")
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "ftp", vErr.Protocol)
				assert.Equal(t, "port", vErr.Field)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParamsCheckBools(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"true", "true", false},
		{"false", "false", false},
		{"uppercase rejected", "TRUE", true},
		{"yes rejected", "yes", true},
		{"numeric rejected", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Params{"signed": tt.value}.checkBools("as2", "signed")
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "signed", vErr.Field)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
