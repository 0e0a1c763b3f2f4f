package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hdllint/corelint/internal/domain/entity"
	"github.com/hdllint/corelint/internal/domain/value"
)

// RuleBinding pairs a registered rule factory with its current raw
// configuration string, in the order the rule was registered.
type RuleBinding struct {
	Factory entity.Factory
	Config  string
}

// Registry is the process-wide rule catalogue: it holds one Factory per
// registered rule name, remembers registration order per tier (the order
// the syntax-tree tier uses to break violation ties, spec §4.4), and
// tracks each rule's enabled/disabled state and configuration string
// (spec §4.6).
type Registry struct {
	mu sync.RWMutex

	order   []string // registration order across all tiers
	factory map[string]entity.Factory
	enabled map[string]bool
	config  map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factory: make(map[string]entity.Factory),
		enabled: make(map[string]bool),
		config:  make(map[string]string),
	}
}

// Register adds a rule factory to the catalogue under its descriptor's
// name. Returns an error if the name is already taken. The rule starts
// enabled according to its descriptor's DefaultEnabled flag.
func (r *Registry) Register(f entity.Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := f.Descriptor().Name
	if name == "" {
		return fmt.Errorf("rule factory has no name")
	}
	key := strings.ToLower(name)
	if _, exists := r.factory[key]; exists {
		return fmt.Errorf("rule name %q is already registered", name)
	}

	r.order = append(r.order, key)
	r.factory[key] = f
	r.enabled[key] = f.Descriptor().DefaultEnabled
	return nil
}

// SetEnabled toggles a rule on or off by name. Returns an error if the
// name is unknown.
func (r *Registry) SetEnabled(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.factory[key]; !exists {
		return fmt.Errorf("unknown rule %q", name)
	}
	r.enabled[key] = enabled
	return nil
}

// Configure validates config against the named rule's schema, by
// constructing and immediately discarding one throwaway instance, then
// stores the raw string for use by every future document (spec §4.6).
// Returns *value.InvalidConfiguration on a malformed string.
func (r *Registry) Configure(name, config string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	f, exists := r.factory[key]
	if !exists {
		return fmt.Errorf("unknown rule %q", name)
	}

	if err := validateConfig(f, config); err != nil {
		return err
	}
	r.config[key] = config
	return nil
}

func validateConfig(f entity.Factory, config string) error {
	switch f.Tier() {
	case value.TierLine:
		return f.NewLine().Configure(config)
	case value.TierTokenStream:
		return f.NewTokenStream().Configure(config)
	case value.TierSyntaxTree:
		return f.NewSyntaxTree().Configure(config)
	case value.TierTextStructure:
		return f.NewTextStructure().Configure(config)
	default:
		return fmt.Errorf("rule %q has unrecognised tier", f.Descriptor().Name)
	}
}

// Descriptors returns every registered rule's descriptor, in registration order.
func (r *Registry) Descriptors() []value.LintRuleDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]value.LintRuleDescriptor, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.factory[key].Descriptor())
	}
	return out
}

// IsEnabled reports whether the named rule is currently enabled.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[strings.ToLower(name)]
}

// ConfigOf returns the raw configuration string currently set for name.
func (r *Registry) ConfigOf(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config[strings.ToLower(name)]
}

// EnabledForTier returns the enabled rule bindings for one tier, in
// registration order — the exact sequence each per-tier linter iterates
// when running a document, and the order that backs registration-index
// tie-breaking in the syntax-tree tier (spec §4.4).
func (r *Registry) EnabledForTier(tier value.Tier) []RuleBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []RuleBinding
	for _, key := range r.order {
		f := r.factory[key]
		if f.Tier() != tier || !r.enabled[key] {
			continue
		}
		out = append(out, RuleBinding{Factory: f, Config: r.config[key]})
	}
	return out
}

// echoConfig renders a rule's effective configuration back through its
// own schema into the canonical `option:value;...` form (spec §8.5's
// round-trip property), rather than echoing back whatever raw string the
// caller happened to supply. By the time a per-tier linter calls this,
// Configure has already validated config against descriptor.Schema, so
// the re-parse here cannot fail; on the impossible error path it falls
// back to echoing the raw string unchanged.
func echoConfig(descriptor value.LintRuleDescriptor, config string) string {
	parsed, err := value.ParseRuleConfig(descriptor.Name, config, descriptor.Schema)
	if err != nil {
		return config
	}
	return value.EchoConfig(descriptor.Schema, parsed.Values)
}

// Stats summarises the catalogue as two counts: "total" registered rules
// and how many of them are "enabled".
func (r *Registry) Stats() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := map[string]int{"total": len(r.order), "enabled": 0}
	for _, key := range r.order {
		if r.enabled[key] {
			stats["enabled"]++
		}
	}
	return stats
}

// sortedNames returns every registered rule name in alphabetical order.
func (r *Registry) sortedNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.factory[key].Descriptor().Name)
	}
	sort.Strings(names)
	return names
}
