package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, schema *Schema, instance interface{}, cfg *Config) []ValidationError {
	t.Helper()
	registry := NewRegistry()
	_, err := registry.Register(schema)
	require.NoError(t, err)
	v := NewValidator(registry, cfg)
	errs, err := v.Validate(schema, instance)
	require.NoError(t, err)
	return errs
}

// Scenario A.
func TestScenarioAProperties(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{
		Properties: map[string]*Serde{
			"name": {Type: strPtr("string")},
			"age":  {Type: strPtr("number")},
		},
	})

	errs := validate(t, schema, map[string]interface{}{"name": "John", "age": 43.0}, nil)
	assert.Empty(t, errs)

	errs = validate(t, schema, map[string]interface{}{"age": "43"}, nil)
	require.Len(t, errs, 2)

	var sawMissingName, sawAgeType bool
	for _, e := range errs {
		if e.InstancePointer() == "" && e.SchemaPointer() == "/properties/name" {
			sawMissingName = true
		}
		if e.InstancePointer() == "/age" && e.SchemaPointer() == "/properties/age/type" {
			sawAgeType = true
		}
	}
	assert.True(t, sawMissingName, "expected missing /properties/name error")
	assert.True(t, sawAgeType, "expected /age type mismatch error")
}

// Scenario B.
func TestScenarioBElements(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{Elements: &Serde{Type: strPtr("string")}})

	errs := validate(t, schema, []interface{}{"a", "b", 3.0}, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "/2", errs[0].InstancePointer())
	assert.Equal(t, "/elements/type", errs[0].SchemaPointer())
}

// Scenario C.
func TestScenarioCRef(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{
		Definitions: map[string]*Serde{"a": {Type: strPtr("boolean")}},
		Ref:         strPtr("a"),
	})

	assert.Empty(t, validate(t, schema, true, nil))

	errs := validate(t, schema, 1.0, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "/definitions/a/type", errs[0].SchemaPointer())
}

// Scenario D.
func TestScenarioDMaxDepthExceeded(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{
		Definitions: map[string]*Serde{"a": {Ref: strPtr("a")}},
		Ref:         strPtr("a"),
	})

	registry := NewRegistry()
	_, err := registry.Register(schema)
	require.NoError(t, err)

	v := NewValidator(registry, NewConfig().WithMaxDepth(8))
	_, err = v.Validate(schema, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrMaxDepthExceeded)
}

// Scenario E.
func TestScenarioEDiscriminator(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{
		Discriminator: &SerdeDiscriminator{
			Tag: "t",
			Mapping: map[string]*Serde{
				"x": {Properties: map[string]*Serde{"v": {Type: strPtr("string")}}},
			},
		},
	})

	assert.Empty(t, validate(t, schema, map[string]interface{}{"t": "x", "v": "ok"}, nil))

	errs := validate(t, schema, map[string]interface{}{"t": "y"}, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "/t", errs[0].InstancePointer())
	assert.Equal(t, "/discriminator/mapping", errs[0].SchemaPointer())

	errs = validate(t, schema, map[string]interface{}{}, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "/discriminator/tag", errs[0].SchemaPointer())
}

// Scenario F.
func TestScenarioFStrictInstanceSemantics(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{
		Properties: map[string]*Serde{"a": {}},
	})

	cfg := NewConfig().WithStrictInstanceSemantics(true)
	errs := validate(t, schema, map[string]interface{}{"a": 1.0, "b": 2.0}, cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "/b", errs[0].InstancePointer())
}

func TestMaxErrorsCapsResults(t *testing.T) {
	schema := mustCanonicalize(t, &Serde{Elements: &Serde{Type: strPtr("string")}})
	cfg := NewConfig().WithMaxErrors(1)
	errs := validate(t, schema, []interface{}{1.0, 2.0, 3.0}, cfg)
	assert.Len(t, errs, 1)
}
