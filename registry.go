package jtd

import (
	"strings"
	"sync"
)

// refKind classifies a ref string per §4.2's wire-level resolution rules.
type refKind int

const (
	refSelf     refKind = iota // "" or "#": the enclosing document's root
	refLocal                   // "#name": a definition in the same document
	refExternal                // "uri" or "uri#name": another document
)

// classifyRef splits a raw ref string into its resolution kind, the
// document-URI part (only set for refExternal) and the definition name
// (set for refLocal and, when present, refExternal).
//
// Per §9's recommended default, this package resolves refs by name within
// a single root: a bare token with no "#" (the common case — see §8
// scenario C) is always a same-document definition name, never parsed as
// a URI. An explicit "#" is what opts a ref into the richer, multi-
// document resolution rules from §4.2, for registries that span more
// than one document.
func classifyRef(ref string) (kind refKind, docURI, defName string) {
	if ref == "" || ref == "#" {
		return refSelf, "", ""
	}
	if strings.HasPrefix(ref, "#") {
		return refLocal, "", ref[1:]
	}
	if !strings.Contains(ref, "#") {
		return refLocal, "", ref
	}
	base, frag := splitRef(ref)
	return refExternal, base, frag
}

// Registry tracks the set of root schemas registered so far and, per
// §4.2, which externally-referenced document URIs have not yet been
// registered. A Registry is safe for concurrent use; mutation (Register)
// is exclusive of readers per the concurrency model in §5.
type Registry struct {
	mu         sync.RWMutex
	documents  map[string]*Schema
	missingIDs map[string]bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		documents:  make(map[string]*Schema),
		missingIDs: make(map[string]bool),
	}
}

// Register adds a root schema to the registry, keyed by its id (the empty
// string for an anonymous/main document), and rescans every document's
// external refs so missingIDs reflects the now-larger set of known
// documents. It returns the current set of missing document URIs, so a
// caller can loop register → fetch(missing) → register until sealed.
// Re-registering an already-present id is treated as an update, not an
// error.
func (r *Registry) Register(schema *Schema) ([]string, error) {
	if schema.root != schema {
		return nil, ErrNonRoot
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := ""
	if schema.ID != nil {
		id = *schema.ID
	}
	r.documents[id] = schema
	delete(r.missingIDs, id)

	r.rescanLocked()

	ids := make([]string, 0, len(r.missingIDs))
	for m := range r.missingIDs {
		ids = append(ids, m)
	}
	return ids, nil
}

// rescanLocked recomputes missingIDs from scratch against the currently
// registered documents. Called with mu held.
func (r *Registry) rescanLocked() {
	missing := make(map[string]bool)
	for _, doc := range r.documents {
		walkRefs(doc, func(ref string) {
			kind, docURI, _ := classifyRef(ref)
			if kind != refExternal {
				return
			}
			resolved := docURI
			if doc.ID != nil {
				if r, ok := resolveRelativeURI(*doc.ID, docURI); ok {
					resolved = r
				}
			}
			if _, ok := r.documents[resolved]; !ok {
				missing[resolved] = true
			}
		})
	}
	r.missingIDs = missing
}

// IsSealed reports whether every externally-referenced document has been
// registered.
func (r *Registry) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.missingIDs) == 0
}

// MissingIDs returns the document URIs referenced but not yet registered.
func (r *Registry) MissingIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.missingIDs))
	for id := range r.missingIDs {
		ids = append(ids, id)
	}
	return ids
}

// Get looks up a registered root schema by id ("" for the anonymous/main
// document).
func (r *Registry) Get(id string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.documents[id]
	return s, ok
}

// resolve follows a Ref-form schema to its target Schema, given the root
// it was declared under. Returns false if the target cannot be found (an
// external document that hasn't been registered, or a dangling local name
// that canonicalization should already have rejected).
func (r *Registry) resolve(fromRoot *Schema, ref string) (*Schema, bool) {
	kind, docURI, defName := classifyRef(ref)
	switch kind {
	case refSelf:
		return fromRoot, true
	case refLocal:
		target, ok := fromRoot.Definitions[defName]
		return target, ok
	case refExternal:
		resolved := docURI
		if fromRoot.ID != nil {
			if u, ok := resolveRelativeURI(*fromRoot.ID, docURI); ok {
				resolved = u
			}
		}
		doc, ok := r.Get(resolved)
		if !ok {
			return nil, false
		}
		if defName == "" {
			return doc, true
		}
		target, ok := doc.Definitions[defName]
		return target, ok
	}
	return nil, false
}

// walkRefs visits every Ref-form schema reachable from s, including its
// definitions.
func walkRefs(s *Schema, visit func(ref string)) {
	if s == nil {
		return
	}
	switch s.Form {
	case FormRef:
		visit(s.Ref)
	case FormElements:
		walkRefs(s.Elements, visit)
	case FormValues:
		walkRefs(s.Values, visit)
	case FormProperties:
		for _, child := range s.Properties {
			walkRefs(child, visit)
		}
		for _, child := range s.OptionalProperties {
			walkRefs(child, visit)
		}
	case FormDiscriminator:
		for _, child := range s.DiscriminatorMapping {
			walkRefs(child, visit)
		}
	}
	for _, def := range s.Definitions {
		walkRefs(def, visit)
	}
}
