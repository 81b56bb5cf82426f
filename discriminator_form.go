package jtd

// evaluateDiscriminator checks the instance is an object carrying the
// configured tag property as a string, looks the tag value up in the
// mapping, and validates the rest of the instance against the selected
// Properties-form member — the object is passed down without its tag key,
// so that, under strict instance semantics, the tag key itself is never
// flagged as an unexpected property.
func (m *vm) evaluateDiscriminator(schema *Schema, instance interface{}) error {
	obj, ok := instance.(map[string]interface{})
	if !ok {
		m.addError()
		return nil
	}

	tagVal, present := obj[schema.DiscriminatorTag]
	if !present {
		m.pushSchema("discriminator")
		m.pushSchema("tag")
		m.addError()
		m.popSchema()
		m.popSchema()
		return nil
	}

	tagStr, ok := tagVal.(string)
	if !ok {
		m.pushSchema("discriminator")
		m.pushSchema("tag")
		m.pushInstance(schema.DiscriminatorTag)
		m.addError()
		m.popInstance()
		m.popSchema()
		m.popSchema()
		return nil
	}

	member, ok := schema.DiscriminatorMapping[tagStr]
	if !ok {
		m.pushSchema("discriminator")
		m.pushSchema("mapping")
		m.pushInstance(schema.DiscriminatorTag)
		m.addError()
		m.popInstance()
		m.popSchema()
		m.popSchema()
		return nil
	}

	filtered := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		if k != schema.DiscriminatorTag {
			filtered[k] = v
		}
	}

	m.pushSchema("discriminator")
	m.pushSchema("mapping")
	m.pushSchema(tagStr)
	err := m.evaluateProperties(member, filtered)
	m.popSchema()
	m.popSchema()
	m.popSchema()
	return err
}
