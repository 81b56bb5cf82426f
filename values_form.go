package jtd

// evaluateValues checks the instance is an object and validates every
// value in it against the values-form schema's sub-schema.
func (m *vm) evaluateValues(schema *Schema, instance interface{}) error {
	obj, ok := instance.(map[string]interface{})
	if !ok {
		m.addError("values")
		return nil
	}

	m.pushSchema("values")
	defer m.popSchema()

	for key, val := range obj {
		if m.budgetExceeded() {
			break
		}
		m.pushInstance(key)
		err := m.evaluate(schema.Values, val)
		m.popInstance()
		if err != nil {
			return err
		}
	}
	return nil
}
