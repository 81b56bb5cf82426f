package jtd

// evaluateRef follows a Ref-form schema to its target, pushing a fresh
// schema-path frame rooted at ["definitions", name] (or an empty frame
// when the ref points at a document root) so that paths inside the
// referenced schema don't accumulate the path of the schema that
// referenced it. The target is resolved through the Registry so cross-
// document refs work the same way same-document ones do.
func (m *vm) evaluateRef(schema *Schema, instance interface{}) error {
	target, ok := m.registry.resolve(schema.Root(), schema.Ref)
	if !ok {
		// The referenced document hasn't been registered yet (registry not
		// sealed); treat the ref as vacuously satisfied rather than fail.
		return nil
	}

	_, _, defName := classifyRef(schema.Ref)
	var frameRoot []string
	if defName != "" {
		frameRoot = []string{"definitions", defName}
	}

	if err := m.pushRefFrame(frameRoot); err != nil {
		return err
	}
	err := m.evaluate(target, instance)
	m.popRefFrame()
	return err
}
