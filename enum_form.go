package jtd

// evaluateEnum checks the instance against an enum-form schema's set of
// allowed string values.
func (m *vm) evaluateEnum(schema *Schema, instance interface{}) {
	s, ok := instance.(string)
	if !ok || !schema.EnumContains(s) {
		m.addError("enum")
	}
}
