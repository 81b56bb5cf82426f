package jtd

// ValidationError is one mismatch between an instance and a schema,
// addressed by a pair of JSON Pointers: where in the instance the problem
// was found, and which schema keyword rejected it. Evaluation produces a
// flat, unordered list of these — it is a result value, not a Go error.
type ValidationError struct {
	InstancePath []string
	SchemaPath   []string
}

// InstancePointer renders InstancePath as an RFC 6901 JSON Pointer.
func (e ValidationError) InstancePointer() string { return formatPointer(e.InstancePath) }

// SchemaPointer renders SchemaPath as an RFC 6901 JSON Pointer.
func (e ValidationError) SchemaPointer() string { return formatPointer(e.SchemaPath) }

// vm is the stack-based evaluator state described in §4.3: an instance
// token stack and a stack of schema-path frames, one frame per active Ref
// traversal so that paths inside a referenced definition don't accumulate
// the path of the schema that referenced it.
type vm struct {
	registry *Registry
	cfg      *Config

	instanceTokens []string
	schemaFrames   [][]string
	refDepth       int

	errs []ValidationError
}

func newVM(registry *Registry, cfg *Config) *vm {
	return &vm{
		registry:     registry,
		cfg:          cfg,
		schemaFrames: [][]string{{}},
	}
}

func (m *vm) pushInstance(token string) { m.instanceTokens = append(m.instanceTokens, token) }
func (m *vm) popInstance()              { m.instanceTokens = m.instanceTokens[:len(m.instanceTokens)-1] }

func (m *vm) topFrame() []string {
	return m.schemaFrames[len(m.schemaFrames)-1]
}

func (m *vm) pushSchema(token string) {
	top := len(m.schemaFrames) - 1
	m.schemaFrames[top] = append(m.schemaFrames[top], token)
}

func (m *vm) popSchema() {
	top := len(m.schemaFrames) - 1
	frame := m.schemaFrames[top]
	m.schemaFrames[top] = frame[:len(frame)-1]
}

// pushRefFrame enters a new schema-path frame rooted at the given tokens
// (["definitions", name], typically), enforcing the configured max depth.
func (m *vm) pushRefFrame(root []string) error {
	if m.refDepth+1 > m.cfg.maxDepth() {
		return ErrMaxDepthExceeded
	}
	m.refDepth++
	frame := make([]string, len(root))
	copy(frame, root)
	m.schemaFrames = append(m.schemaFrames, frame)
	return nil
}

func (m *vm) popRefFrame() {
	m.refDepth--
	m.schemaFrames = m.schemaFrames[:len(m.schemaFrames)-1]
}

// budgetExceeded reports whether maxErrors has already been hit. A true
// result means the caller should stop descending without raising an
// error — it is a successful early return of the errors collected so far.
func (m *vm) budgetExceeded() bool {
	n := m.cfg.maxErrors()
	return n > 0 && len(m.errs) >= n
}

// addError records a mismatch at the current instance/schema path, with
// schemaPathSuffix appended (the specific keyword within the current
// form, e.g. "type" or "enum").
func (m *vm) addError(schemaPathSuffix ...string) {
	instancePath := make([]string, len(m.instanceTokens))
	copy(instancePath, m.instanceTokens)

	top := m.topFrame()
	schemaPath := make([]string, 0, len(top)+len(schemaPathSuffix))
	schemaPath = append(schemaPath, top...)
	schemaPath = append(schemaPath, schemaPathSuffix...)

	m.errs = append(m.errs, ValidationError{InstancePath: instancePath, SchemaPath: schemaPath})
}

// evaluate dispatches on schema.Form, descending per §4.3's per-form
// rules. The only error it can return is ErrMaxDepthExceeded, which is
// fatal and aborts evaluation immediately with no partial error list.
func (m *vm) evaluate(schema *Schema, instance interface{}) error {
	if m.budgetExceeded() {
		return nil
	}
	switch schema.Form {
	case FormEmpty:
		return nil
	case FormRef:
		return m.evaluateRef(schema, instance)
	case FormType:
		m.evaluateType(schema, instance)
		return nil
	case FormEnum:
		m.evaluateEnum(schema, instance)
		return nil
	case FormElements:
		return m.evaluateElements(schema, instance)
	case FormProperties:
		return m.evaluateProperties(schema, instance)
	case FormValues:
		return m.evaluateValues(schema, instance)
	case FormDiscriminator:
		return m.evaluateDiscriminator(schema, instance)
	}
	return nil
}
