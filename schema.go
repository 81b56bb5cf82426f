package jtd

// Form identifies which of the eight mutually-exclusive keyword groups a
// canonical Schema was built from.
type Form int

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
	FormValues
	FormDiscriminator
)

func (f Form) String() string {
	switch f {
	case FormEmpty:
		return "empty"
	case FormRef:
		return "ref"
	case FormType:
		return "type"
	case FormEnum:
		return "enum"
	case FormElements:
		return "elements"
	case FormProperties:
		return "properties"
	case FormValues:
		return "values"
	case FormDiscriminator:
		return "discriminator"
	default:
		return "unknown"
	}
}

// PrimitiveTypes enumerates the names valid in a type-form schema's "type"
// keyword: the base set §3/§6 name explicitly (boolean, number, string,
// timestamp), plus the sized-integer and split-float variants §9 flags as
// an open question some JSL revisions also accept. See DESIGN.md's "type
// enumeration" entry.
var PrimitiveTypes = map[string]bool{
	"boolean":   true,
	"number":    true,
	"string":    true,
	"timestamp": true,
	"float32":   true,
	"float64":   true,
	"int8":      true,
	"uint8":     true,
	"int16":     true,
	"uint16":    true,
	"int32":     true,
	"uint32":    true,
}

// Schema is the canonicalized form of a JSL schema: a discriminated union
// over eight forms, plus the root-only metadata (id, definitions) that only
// ever appears on the outermost schema of a document.
//
// Only the fields belonging to Form are meaningful; fields of other forms
// are left at their zero value. Schema values are immutable and safe to
// share across goroutines once constructed.
type Schema struct {
	// Root-only. Nil on every non-root schema.
	ID          *string
	Definitions map[string]*Schema

	Form Form

	Extra map[string]interface{}

	// FormRef
	Ref string

	// FormType
	Type string

	// FormEnum
	Enum    []string
	enumSet map[string]bool

	// FormElements
	Elements *Schema

	// FormProperties. PropertiesDeclared distinguishes "properties
	// omitted" from "properties present but empty" (has_required in
	// §3): it governs which keyword — properties or optionalProperties —
	// is cited when the instance itself isn't an object.
	Properties         map[string]*Schema
	OptionalProperties map[string]*Schema
	PropertiesDeclared bool

	// FormValues
	Values *Schema

	// FormDiscriminator
	DiscriminatorTag     string
	DiscriminatorMapping map[string]*Schema

	// root points at the enclosing document's root Schema, used by the
	// evaluator to look up ref targets. Nil only while a root itself is
	// still under construction.
	root *Schema
}

// EnumContains reports whether value is one of the schema's enumerated
// values. Only meaningful when Form == FormEnum.
func (s *Schema) EnumContains(value string) bool {
	return s.enumSet[value]
}

// Root returns the Schema's enclosing root (itself, if it is the root).
func (s *Schema) Root() *Schema {
	if s.root != nil {
		return s.root
	}
	return s
}

// Canonicalize validates a Serde value against the eight-form discipline
// and builds the corresponding Schema. isRoot is true only for the
// outermost call; root is the (possibly still-under-construction) root
// Schema that definitions and refs resolve against — callers constructing
// a new root pass nil and Canonicalize wires the self-reference once the
// struct exists.
func Canonicalize(serde *Serde, isRoot bool, root *Schema) (*Schema, error) {
	if serde.Definitions != nil && !isRoot {
		return nil, ErrNonRoot
	}

	form, err := classify(serde)
	if err != nil {
		return nil, err
	}

	s := &Schema{
		Form:  form,
		Extra: serde.Extra,
	}

	if isRoot {
		s.ID = serde.ID
		s.root = s
	} else {
		s.root = root
	}

	switch form {
	case FormRef:
		s.Ref = *serde.Ref
	case FormType:
		if !PrimitiveTypes[*serde.Type] {
			return nil, ErrInvalidForm
		}
		s.Type = *serde.Type
	case FormEnum:
		if len(serde.Enum) == 0 {
			return nil, ErrInvalidForm
		}
		seen := make(map[string]bool, len(serde.Enum))
		for _, v := range serde.Enum {
			if seen[v] {
				return nil, ErrInvalidForm
			}
			seen[v] = true
		}
		s.Enum = serde.Enum
		s.enumSet = seen
	case FormElements:
		child, err := Canonicalize(serde.Elements, false, s.root)
		if err != nil {
			return nil, err
		}
		s.Elements = child
	case FormProperties:
		props, err := canonicalizeMap(serde.Properties, s.root)
		if err != nil {
			return nil, err
		}
		optProps, err := canonicalizeMap(serde.OptionalProperties, s.root)
		if err != nil {
			return nil, err
		}
		for name := range props {
			if _, ok := optProps[name]; ok {
				return nil, &AmbiguousPropertyError{Property: name}
			}
		}
		s.Properties = props
		s.OptionalProperties = optProps
		s.PropertiesDeclared = serde.Properties != nil
	case FormValues:
		child, err := Canonicalize(serde.Values, false, s.root)
		if err != nil {
			return nil, err
		}
		s.Values = child
	case FormDiscriminator:
		mapping := make(map[string]*Schema, len(serde.Discriminator.Mapping))
		for tag, memberSerde := range serde.Discriminator.Mapping {
			member, err := Canonicalize(memberSerde, false, s.root)
			if err != nil {
				return nil, err
			}
			if member.Form != FormProperties {
				return nil, ErrInvalidForm
			}
			if _, declared := member.Properties[serde.Discriminator.Tag]; declared {
				return nil, &AmbiguousPropertyError{Property: serde.Discriminator.Tag}
			}
			if _, declared := member.OptionalProperties[serde.Discriminator.Tag]; declared {
				return nil, &AmbiguousPropertyError{Property: serde.Discriminator.Tag}
			}
			mapping[tag] = member
		}
		s.DiscriminatorTag = serde.Discriminator.Tag
		s.DiscriminatorMapping = mapping
	}

	if isRoot {
		defs, err := canonicalizeMap(serde.Definitions, s.root)
		if err != nil {
			return nil, err
		}
		s.Definitions = defs
		if err := checkDefinitionNames(s, s); err != nil {
			return nil, err
		}
		for _, def := range defs {
			if err := checkDefinitionNames(s, def); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

func canonicalizeMap(in map[string]*Serde, root *Schema) (map[string]*Schema, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[string]*Schema, len(in))
	for name, childSerde := range in {
		child, err := Canonicalize(childSerde, false, root)
		if err != nil {
			return nil, err
		}
		out[name] = child
	}
	return out, nil
}

// classify implements §4.1's keyword-presence scan: exactly one
// form-bearing keyword group may be present, otherwise the schema is
// ErrInvalidForm.
func classify(serde *Serde) (Form, error) {
	groups := 0
	var form Form

	mark := func(f Form) {
		groups++
		form = f
	}

	if serde.Ref != nil {
		mark(FormRef)
	}
	if serde.Type != nil {
		mark(FormType)
	}
	if serde.Enum != nil {
		mark(FormEnum)
	}
	if serde.Elements != nil {
		mark(FormElements)
	}
	if serde.Properties != nil || serde.OptionalProperties != nil {
		mark(FormProperties)
	}
	if serde.Values != nil {
		mark(FormValues)
	}
	if serde.Discriminator != nil {
		mark(FormDiscriminator)
	}

	if groups > 1 {
		return 0, ErrInvalidForm
	}
	if groups == 0 {
		return FormEmpty, nil
	}
	return form, nil
}

// checkDefinitionNames is the post-pass from §4.1: every same-document Ref
// to a definition must name an entry in the root's Definitions. Refs to the
// document root ("" or "#") need no lookup, and refs to another document
// are only checked for being resolvable against an id.
func checkDefinitionNames(root, s *Schema) error {
	switch s.Form {
	case FormRef:
		kind, docURI, defName := classifyRef(s.Ref)
		switch kind {
		case refSelf:
			// Points at the enclosing document's own root; nothing to
			// look up.
		case refLocal:
			if _, ok := root.Definitions[defName]; !ok {
				var id string
				if root.ID != nil {
					id = *root.ID
				}
				return &NoSuchDefinitionError{SchemaID: id, Definition: defName}
			}
		case refExternal:
			if !isAbsoluteURI(docURI) && root.ID == nil {
				return ErrRelativeRefFromAnonymousSchema
			}
			// Resolving the referenced document itself is the
			// Registry's job (§4.2), deferred until registration time.
		}
	case FormElements:
		return checkDefinitionNames(root, s.Elements)
	case FormValues:
		return checkDefinitionNames(root, s.Values)
	case FormProperties:
		for _, child := range s.Properties {
			if err := checkDefinitionNames(root, child); err != nil {
				return err
			}
		}
		for _, child := range s.OptionalProperties {
			if err := checkDefinitionNames(root, child); err != nil {
				return err
			}
		}
	case FormDiscriminator:
		for _, child := range s.DiscriminatorMapping {
			if err := checkDefinitionNames(root, child); err != nil {
				return err
			}
		}
	}
	return nil
}
