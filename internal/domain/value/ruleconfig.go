package value

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidConfiguration is returned by Configure when a rule's
// configuration string is malformed (spec §7). It names the rule and the
// offending option, as §6 requires.
type InvalidConfiguration struct {
	RuleName string
	Option   string
	Reason   string
}

func (e *InvalidConfiguration) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("rule %s: invalid configuration: %s", e.RuleName, e.Reason)
	}
	return fmt.Sprintf("rule %s: invalid configuration option %q: %s", e.RuleName, e.Option, e.Reason)
}

// OptionType names the value kind a rule declares for one configuration
// option (spec §4.6).
type OptionType int

const (
	OptionBool OptionType = iota
	OptionInt
	OptionString
)

// OptionSchema describes one (option-name, type, default, help) tuple in
// a LintRuleDescriptor's configuration schema (spec §3).
type OptionSchema struct {
	Name    string
	Type    OptionType
	Default interface{}
	Help    string
}

// ParsedConfig is the typed result of parsing one rule's configuration
// string against its schema: declared options take their parsed or
// default value; Raw holds the original string as given. The echoed
// form for spec §8.5's round-trip property is rendered from Values by
// EchoConfig, not taken from Raw.
type ParsedConfig struct {
	Raw    string
	Values map[string]interface{}
}

// Bool returns the bool value of a configured option.
func (c ParsedConfig) Bool(name string) bool {
	v, _ := c.Values[name].(bool)
	return v
}

// Int returns the int value of a configured option.
func (c ParsedConfig) Int(name string) int {
	v, _ := c.Values[name].(int)
	return v
}

// String returns the string value of a configured option.
func (c ParsedConfig) String(name string) string {
	v, _ := c.Values[name].(string)
	return v
}

// ParseRuleConfig parses the bit-exact grammar from spec §4.6/§6:
//
//	option[:value](;option[:value])*
//
// against schema, returning the resolved typed values (declared defaults
// filled in for options the string omits) and the raw string for
// round-tripping. Unknown options and malformed integers are rejected as
// *InvalidConfiguration, naming ruleName and the offending option.
func ParseRuleConfig(ruleName, config string, schema []OptionSchema) (ParsedConfig, error) {
	byName := make(map[string]OptionSchema, len(schema))
	values := make(map[string]interface{}, len(schema))
	for _, opt := range schema {
		byName[opt.Name] = opt
		values[opt.Name] = opt.Default
	}

	trimmed := strings.TrimSpace(config)
	if trimmed != "" {
		for _, clause := range strings.Split(trimmed, ";") {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}
			name, rawValue, hasValue := strings.Cut(clause, ":")
			name = strings.TrimSpace(name)
			rawValue = strings.TrimSpace(rawValue)

			opt, known := byName[name]
			if !known {
				return ParsedConfig{}, &InvalidConfiguration{
					RuleName: ruleName, Option: name, Reason: "unknown option",
				}
			}

			parsed, err := parseOptionValue(opt, rawValue, hasValue)
			if err != nil {
				return ParsedConfig{}, &InvalidConfiguration{
					RuleName: ruleName, Option: name, Reason: err.Error(),
				}
			}
			values[name] = parsed
		}
	}

	return ParsedConfig{Raw: config, Values: values}, nil
}

func parseOptionValue(opt OptionSchema, raw string, hasValue bool) (interface{}, error) {
	switch opt.Type {
	case OptionBool:
		if !hasValue {
			return true, nil
		}
		return parseConfigBool(raw)
	case OptionInt:
		if !hasValue {
			return nil, fmt.Errorf("expected an integer value")
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed integer %q", raw)
		}
		return n, nil
	case OptionString:
		return raw, nil
	default:
		return nil, fmt.Errorf("unrecognised option type")
	}
}

// parseConfigBool implements the case-insensitive on/off/true/false/1/0
// boolean grammar from spec §6.
func parseConfigBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("malformed boolean %q", raw)
	}
}

// EchoConfig renders values back into the canonical `option:value;...`
// form, in schema order, for the round-trip property in spec §8.5.
func EchoConfig(schema []OptionSchema, values map[string]interface{}) string {
	var b strings.Builder
	for i, opt := range schema {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(opt.Name)
		b.WriteByte(':')
		switch opt.Type {
		case OptionBool:
			if v, _ := values[opt.Name].(bool); v {
				b.WriteString("true")
			} else {
				b.WriteString("false")
			}
		case OptionInt:
			fmt.Fprintf(&b, "%d", values[opt.Name])
		case OptionString:
			b.WriteString(fmt.Sprintf("%v", values[opt.Name]))
		}
	}
	return b.String()
}
