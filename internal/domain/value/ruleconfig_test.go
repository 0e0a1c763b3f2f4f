package value

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleConfig_DefaultsAndOverrides(t *testing.T) {
	schema := []OptionSchema{
		{Name: "length", Type: OptionInt, Default: 100},
		{Name: "allow-dash-for-underscore", Type: OptionBool, Default: false},
	}

	parsed, err := ParseRuleConfig("line-length", "length:40", schema)
	require.NoError(t, err)
	assert.Equal(t, 40, parsed.Int("length"))
	assert.False(t, parsed.Bool("allow-dash-for-underscore"))
}

func TestParseRuleConfig_RejectsUnknownOption(t *testing.T) {
	schema := []OptionSchema{{Name: "length", Type: OptionInt, Default: 100}}

	_, err := ParseRuleConfig("line-length", "width:40", schema)
	require.Error(t, err)

	var invalid *InvalidConfiguration
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "width", invalid.Option)
}

// TestEchoConfig_RoundTrips covers spec §8.5's configuration round-trip
// property: parsing a configuration string and echoing it back through
// its schema always yields the same canonical form, regardless of how
// the input string was written (defaults omitted, options reordered,
// boolean spelled as on/off instead of true/false).
func TestEchoConfig_RoundTrips(t *testing.T) {
	schema := []OptionSchema{
		{Name: "length", Type: OptionInt, Default: 100},
		{Name: "allow-dash-for-underscore", Type: OptionBool, Default: false},
	}

	cases := []struct {
		name   string
		config string
	}{
		{"all-defaults", ""},
		{"partial-override", "length:40"},
		{"on-off-spelling", "length:60;allow-dash-for-underscore:on"},
		{"reordered", "allow-dash-for-underscore:true;length:80"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseRuleConfig("line-length", tc.config, schema)
			require.NoError(t, err)

			echoed := EchoConfig(schema, parsed.Values)
			want := "length:" + strconv.Itoa(parsed.Int("length")) + ";allow-dash-for-underscore:" + strconv.FormatBool(parsed.Bool("allow-dash-for-underscore"))
			assert.Equal(t, want, echoed)

			reparsed, err := ParseRuleConfig("line-length", echoed, schema)
			require.NoError(t, err)
			assert.Equal(t, parsed.Values, reparsed.Values)

			assert.Equal(t, echoed, EchoConfig(schema, reparsed.Values), "echoing a canonical string must be a fixed point")
		})
	}
}
