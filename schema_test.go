package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCanonicalizeFormExclusivity(t *testing.T) {
	_, err := Canonicalize(&Serde{
		Ref:  strPtr("a"),
		Type: strPtr("string"),
	}, true, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestCanonicalizeEmptyForm(t *testing.T) {
	s, err := Canonicalize(&Serde{}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, FormEmpty, s.Form)
}

func TestCanonicalizeTypeForm(t *testing.T) {
	s, err := Canonicalize(&Serde{Type: strPtr("string")}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, FormType, s.Form)
	assert.Equal(t, "string", s.Type)

	_, err = Canonicalize(&Serde{Type: strPtr("not-a-type")}, true, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestCanonicalizeEnumForm(t *testing.T) {
	_, err := Canonicalize(&Serde{Enum: []string{}}, true, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)

	_, err = Canonicalize(&Serde{Enum: []string{"a", "a"}}, true, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)

	s, err := Canonicalize(&Serde{Enum: []string{"a", "b"}}, true, nil)
	require.NoError(t, err)
	assert.True(t, s.EnumContains("a"))
	assert.False(t, s.EnumContains("c"))
}

func TestCanonicalizeAmbiguousProperty(t *testing.T) {
	_, err := Canonicalize(&Serde{
		Properties:         map[string]*Serde{"a": {Type: strPtr("string")}},
		OptionalProperties: map[string]*Serde{"a": {Type: strPtr("string")}},
	}, true, nil)
	var ambiguous *AmbiguousPropertyError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "a", ambiguous.Property)
}

func TestCanonicalizeDiscriminatorRejectsNonPropertiesMember(t *testing.T) {
	_, err := Canonicalize(&Serde{
		Discriminator: &SerdeDiscriminator{
			Tag:     "t",
			Mapping: map[string]*Serde{"x": {Type: strPtr("string")}},
		},
	}, true, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestCanonicalizeDiscriminatorRejectsRedeclaredTag(t *testing.T) {
	_, err := Canonicalize(&Serde{
		Discriminator: &SerdeDiscriminator{
			Tag: "t",
			Mapping: map[string]*Serde{
				"x": {Properties: map[string]*Serde{"t": {Type: strPtr("string")}}},
			},
		},
	}, true, nil)
	var ambiguous *AmbiguousPropertyError
	require.ErrorAs(t, err, &ambiguous)
}

func TestCanonicalizeNonRootDefinitions(t *testing.T) {
	_, err := Canonicalize(&Serde{
		Definitions: map[string]*Serde{"a": {Type: strPtr("string")}},
	}, false, nil)
	assert.ErrorIs(t, err, ErrNonRoot)
}

func TestCanonicalizeNoSuchDefinition(t *testing.T) {
	_, err := Canonicalize(&Serde{Ref: strPtr("missing")}, true, nil)
	var notFound *NoSuchDefinitionError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Definition)
}

// Scenario C from the conformance scenarios: a same-document ref to a
// definition that does exist canonicalizes cleanly.
func TestCanonicalizeRefToExistingDefinition(t *testing.T) {
	s, err := Canonicalize(&Serde{
		Ref:         strPtr("a"),
		Definitions: map[string]*Serde{"a": {Type: strPtr("boolean")}},
	}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, FormRef, s.Form)
	assert.Equal(t, "a", s.Ref)
}

func TestCanonicalizePropertiesDeclaredBit(t *testing.T) {
	s, err := Canonicalize(&Serde{Properties: map[string]*Serde{}}, true, nil)
	require.NoError(t, err)
	assert.True(t, s.PropertiesDeclared)

	s, err = Canonicalize(&Serde{OptionalProperties: map[string]*Serde{}}, true, nil)
	require.NoError(t, err)
	assert.False(t, s.PropertiesDeclared)
}
