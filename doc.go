// Package jtd implements JSON Schema Language (JSON Type Definition): a
// small, strictly-typed alternative to JSON Schema. It canonicalizes the
// permissive wire form into an eight-way discriminated Schema, resolves
// cross-document definitions through a Registry, and validates instances
// with a stack-based Evaluator that produces a flat list of
// ValidationErrors addressed by JSON Pointer.
//
// Credit to https://jsontypedef.com and the json-schema-language project
// this package's semantics are grounded on.
package jtd
