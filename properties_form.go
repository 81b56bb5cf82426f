package jtd

// evaluateProperties checks the instance is an object, that every
// required property is present, validates every known property against
// its sub-schema, and — only when the evaluator's StrictInstanceSemantics
// is enabled — flags any instance key outside required/optional.
//
// When the instance itself isn't an object, the schema-path of the single
// emitted error ends in "properties" if the schema declared a properties
// keyword at all (even empty), or "optionalProperties" otherwise — the
// has_required distinction from §3.
func (m *vm) evaluateProperties(schema *Schema, instance interface{}) error {
	obj, ok := instance.(map[string]interface{})
	if !ok {
		if schema.PropertiesDeclared {
			m.addError("properties")
		} else {
			m.addError("optionalProperties")
		}
		return nil
	}

	for name := range schema.Properties {
		if m.budgetExceeded() {
			return nil
		}
		if _, present := obj[name]; !present {
			m.pushSchema("properties")
			m.pushSchema(name)
			m.addError()
			m.popSchema()
			m.popSchema()
		}
	}

	for name, val := range obj {
		if m.budgetExceeded() {
			return nil
		}
		if sub, ok := schema.Properties[name]; ok {
			if err := m.evaluateChild("properties", name, sub, name, val); err != nil {
				return err
			}
			continue
		}
		if sub, ok := schema.OptionalProperties[name]; ok {
			if err := m.evaluateChild("optionalProperties", name, sub, name, val); err != nil {
				return err
			}
			continue
		}
		if m.cfg.strictInstanceSemantics() {
			m.pushInstance(name)
			m.addError()
			m.popInstance()
		}
	}
	return nil
}

// evaluateChild pushes both the keyword-group and instance-key tokens
// before recursing into a property's sub-schema, and unwinds them
// afterward regardless of outcome.
func (m *vm) evaluateChild(group, propName string, sub *Schema, instanceKey string, val interface{}) error {
	m.pushSchema(group)
	m.pushSchema(propName)
	m.pushInstance(instanceKey)
	err := m.evaluate(sub, val)
	m.popInstance()
	m.popSchema()
	m.popSchema()
	return err
}
