package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

type configurableRule struct {
	descriptor value.LintRuleDescriptor
}

func (r *configurableRule) Descriptor() value.LintRuleDescriptor { return r.descriptor }
func (r *configurableRule) Configure(config string) error {
	_, err := value.ParseRuleConfig(r.descriptor.Name, config, r.descriptor.Schema)
	return err
}
func (r *configurableRule) HandleLine(string, int)         {}
func (r *configurableRule) Report() value.LintRuleStatus {
	return value.LintRuleStatus{Descriptor: r.descriptor}
}

func configurableFactory(name string, defaultEnabled bool) entity.Factory {
	descriptor := value.LintRuleDescriptor{
		Name:           name,
		Tier:           value.TierLine,
		DefaultEnabled: defaultEnabled,
		Schema:         []value.OptionSchema{{Name: "max", Type: value.OptionInt, Default: 100}},
	}
	return entity.NewLineRuleFactory(descriptor, func() entity.LineLintRule {
		return &configurableRule{descriptor: descriptor}
	})
}

func TestRegistry_RegisterRejectsDuplicateNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(configurableFactory("rule-a", true)))
	err := r.Register(configurableFactory("rule-a", true))
	assert.Error(t, err)
}

func TestRegistry_ConfigureRejectsMalformedConfig(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(configurableFactory("rule-a", true)))

	err := r.Configure("rule-a", "max:not-a-number")
	require.Error(t, err)
	var invalid *value.InvalidConfiguration
	assert.ErrorAs(t, err, &invalid)
}

func TestRegistry_EnabledForTier_PreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(configurableFactory("rule-b", true)))
	require.NoError(t, r.Register(configurableFactory("rule-a", true)))

	bindings := r.EnabledForTier(value.TierLine)
	require.Len(t, bindings, 2)
	assert.Equal(t, "rule-b", bindings[0].Factory.Descriptor().Name)
	assert.Equal(t, "rule-a", bindings[1].Factory.Descriptor().Name)
}

func TestRegistry_DefaultDisabledRuleExcludedFromTier(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(configurableFactory("rule-a", false)))

	assert.False(t, r.IsEnabled("rule-a"))
	assert.Empty(t, r.EnabledForTier(value.TierLine))

	require.NoError(t, r.SetEnabled("rule-a", true))
	assert.Len(t, r.EnabledForTier(value.TierLine), 1)
}
