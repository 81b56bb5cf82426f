package jtd

import "strconv"

// evaluateElements checks the instance is an array and validates each
// element against the elements-form schema's sub-schema. Array-index
// tokens are synthesized (the one case where instance-path tokens are not
// borrowed zero-copy from the wire, per §5).
func (m *vm) evaluateElements(schema *Schema, instance interface{}) error {
	arr, ok := instance.([]interface{})
	if !ok {
		m.addError("elements")
		return nil
	}

	m.pushSchema("elements")
	defer m.popSchema()

	for i, elem := range arr {
		if m.budgetExceeded() {
			break
		}
		m.pushInstance(strconv.Itoa(i))
		err := m.evaluate(schema.Elements, elem)
		m.popInstance()
		if err != nil {
			return err
		}
	}
	return nil
}
