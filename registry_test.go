package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCanonicalize(t *testing.T, serde *Serde) *Schema {
	t.Helper()
	s, err := Canonicalize(serde, true, nil)
	require.NoError(t, err)
	return s
}

func TestRegistryAnonymousDocumentIsSealedByDefault(t *testing.T) {
	r := NewRegistry()
	missing, err := r.Register(mustCanonicalize(t, &Serde{Type: strPtr("string")}))
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.True(t, r.IsSealed())
}

func TestRegistryTracksMissingExternalDocument(t *testing.T) {
	r := NewRegistry()
	doc := mustCanonicalize(t, &Serde{
		ID:  strPtr("http://example.com/main"),
		Ref: strPtr("http://example.com/other#thing"),
	})
	missing, err := r.Register(doc)
	require.NoError(t, err)
	assert.Contains(t, missing, "http://example.com/other")
	assert.False(t, r.IsSealed())
}

func TestRegistrySealsOnceReferentIsRegistered(t *testing.T) {
	r := NewRegistry()
	main := mustCanonicalize(t, &Serde{
		ID:  strPtr("http://example.com/main"),
		Ref: strPtr("http://example.com/other#thing"),
	})
	_, err := r.Register(main)
	require.NoError(t, err)
	require.False(t, r.IsSealed())

	other := mustCanonicalize(t, &Serde{
		ID:          strPtr("http://example.com/other"),
		Definitions: map[string]*Serde{"thing": {Type: strPtr("string")}},
	})
	_, err = r.Register(other)
	require.NoError(t, err)
	assert.True(t, r.IsSealed())
}

func TestRegistryRejectsNonRootSchema(t *testing.T) {
	root := mustCanonicalize(t, &Serde{Properties: map[string]*Serde{"a": {Type: strPtr("string")}}})
	nonRoot := root.Properties["a"]

	r := NewRegistry()
	_, err := r.Register(nonRoot)
	assert.ErrorIs(t, err, ErrNonRoot)
}

func TestRegistryReRegisterIsMonotonic(t *testing.T) {
	r := NewRegistry()
	doc := mustCanonicalize(t, &Serde{Type: strPtr("string")})
	_, err := r.Register(doc)
	require.NoError(t, err)
	require.True(t, r.IsSealed())

	_, err = r.Register(doc)
	require.NoError(t, err)
	assert.True(t, r.IsSealed())
}
