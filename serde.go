package jtd

import (
	"sort"

	"github.com/go-json-experiment/json"
)

// Serde is the permissive, round-tripping mirror of a JSON Type Definition
// schema document. It accepts whatever combination of keywords is present
// on the wire — Canonicalize is what enforces the eight-form discipline.
// Unknown keys are preserved in Extra so a Serde value round-trips losslessly
// even for documents this package does not yet understand.
type Serde struct {
	ID                 *string                `json:"id,omitempty"`
	Definitions        map[string]*Serde      `json:"definitions,omitempty"`
	Ref                *string                `json:"ref,omitempty"`
	Type               *string                `json:"type,omitempty"`
	Enum               []string               `json:"enum,omitempty"`
	Elements           *Serde                 `json:"elements,omitempty"`
	Properties         map[string]*Serde      `json:"properties,omitempty"`
	OptionalProperties map[string]*Serde      `json:"optionalProperties,omitempty"`
	Values             *Serde                 `json:"values,omitempty"`
	Discriminator      *SerdeDiscriminator    `json:"discriminator,omitempty"`
	Extra              map[string]interface{} `json:"-"`
}

// SerdeDiscriminator mirrors the wire form of the discriminator keyword
// group: the instance property that carries the tag value, and the mapping
// from tag value to the Properties-form schema it selects.
type SerdeDiscriminator struct {
	Tag     string            `json:"tag"`
	Mapping map[string]*Serde `json:"mapping"`
}

// knownSerdeFields lists every wire keyword this package understands. Keys
// outside this set are preserved in Extra rather than rejected, so callers
// can round-trip documents that use keywords from a future revision.
var knownSerdeFields = map[string]bool{
	"id": true, "definitions": true, "ref": true, "type": true, "enum": true,
	"elements": true, "properties": true, "optionalProperties": true,
	"values": true, "discriminator": true,
}

// MarshalJSON emits the wire form, merging Extra back in alongside the
// known keywords. Keys are written in a stable order so repeated marshals
// of the same value produce byte-identical output.
func (s *Serde) MarshalJSON() ([]byte, error) {
	merged := make(map[string]interface{}, len(s.Extra)+12)
	for k, v := range s.Extra {
		merged[k] = v
	}
	if s.ID != nil {
		merged["id"] = *s.ID
	}
	if s.Definitions != nil {
		merged["definitions"] = s.Definitions
	}
	if s.Ref != nil {
		merged["ref"] = *s.Ref
	}
	if s.Type != nil {
		merged["type"] = *s.Type
	}
	if s.Enum != nil {
		merged["enum"] = s.Enum
	}
	if s.Elements != nil {
		merged["elements"] = s.Elements
	}
	if s.Properties != nil {
		merged["properties"] = s.Properties
	}
	if s.OptionalProperties != nil {
		merged["optionalProperties"] = s.OptionalProperties
	}
	if s.Values != nil {
		merged["values"] = s.Values
	}
	if s.Discriminator != nil {
		merged["discriminator"] = s.Discriminator
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(merged[k])
		if err != nil {
			return nil, err
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON decodes the wire form into the known fields, stashing
// anything outside knownSerdeFields into Extra.
func (s *Serde) UnmarshalJSON(data []byte) error {
	type plain Serde
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Serde(p)

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	extra := make(map[string]interface{})
	for k, v := range raw {
		if !knownSerdeFields[k] {
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		s.Extra = extra
	}
	return nil
}
