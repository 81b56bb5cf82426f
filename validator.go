package jtd

// Config controls the resource bounds and strictness of a Validator,
// restored here as the chainable builder original_source's validator.rs
// exposes rather than spec.md's bare field list.
type Config struct {
	maxErrorsValue int
	maxDepthValue  int
	strict         bool
}

// NewConfig returns a Config with the defaults from §6: unlimited errors,
// a max ref-traversal depth of 32, and non-strict instance semantics.
func NewConfig() *Config {
	return &Config{maxDepthValue: 32}
}

// WithMaxErrors caps how many ValidationErrors a single Validate call
// collects before returning early. Zero (the default) means unlimited.
func (c *Config) WithMaxErrors(n int) *Config {
	c.maxErrorsValue = n
	return c
}

// WithMaxDepth bounds how many nested Ref traversals are allowed before
// evaluation fails fatally with ErrMaxDepthExceeded.
func (c *Config) WithMaxDepth(n int) *Config {
	c.maxDepthValue = n
	return c
}

// WithStrictInstanceSemantics makes Properties- and Discriminator-form
// evaluation flag any instance key outside required/optional/the
// discriminator tag. This is the only such check this package performs;
// there is no per-schema keyword for it.
func (c *Config) WithStrictInstanceSemantics(strict bool) *Config {
	c.strict = strict
	return c
}

func (c *Config) maxErrors() int                { return c.maxErrorsValue }
func (c *Config) maxDepth() int                  { return c.maxDepthValue }
func (c *Config) strictInstanceSemantics() bool { return c.strict }

// Validator evaluates instances against schemas registered in a Registry,
// per the configuration in Config.
type Validator struct {
	registry *Registry
	config   *Config
}

// NewValidator builds a Validator. config may be nil, in which case
// NewConfig's defaults apply.
func NewValidator(registry *Registry, config *Config) *Validator {
	if config == nil {
		config = NewConfig()
	}
	return &Validator{registry: registry, config: config}
}

// Validate evaluates instance against schema, returning every mismatch
// found (possibly capped by MaxErrors). The only error it returns is
// ErrMaxDepthExceeded, raised when a chain of Refs nests deeper than
// MaxDepth — a fatal outcome distinct from the ValidationError list,
// which carries no partial results when it occurs.
func (v *Validator) Validate(schema *Schema, instance interface{}) ([]ValidationError, error) {
	m := newVM(v.registry, v.config)
	if err := m.evaluate(schema, instance); err != nil {
		return nil, err
	}
	return m.errs, nil
}
