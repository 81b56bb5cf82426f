package jtd

import (
	"math/big"
	"time"

	"github.com/go-json-experiment/json"
)

// evaluateType checks the instance against a type-form schema's single
// primitive type name.
func (m *vm) evaluateType(schema *Schema, instance interface{}) {
	if typeMatches(schema.Type, instance) {
		return
	}
	m.addError("type")
}

func typeMatches(want string, instance interface{}) bool {
	switch want {
	case "boolean":
		_, ok := instance.(bool)
		return ok
	case "string":
		_, ok := instance.(string)
		return ok
	case "timestamp":
		s, ok := instance.(string)
		if !ok {
			return false
		}
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	case "number", "float32", "float64":
		return isNumber(instance)
	case "int8":
		return isIntInRange(instance, -128, 127)
	case "uint8":
		return isIntInRange(instance, 0, 255)
	case "int16":
		return isIntInRange(instance, -32768, 32767)
	case "uint16":
		return isIntInRange(instance, 0, 65535)
	case "int32":
		return isIntInRange(instance, -2147483648, 2147483647)
	case "uint32":
		return isIntInRange(instance, 0, 4294967295)
	default:
		return false
	}
}

func isNumber(instance interface{}) bool {
	switch instance.(type) {
	case float64, float32, json.Number:
		return true
	default:
		return false
	}
}

// isIntInRange reports whether instance is a JSON number with no
// fractional part, within [lo, hi].
func isIntInRange(instance interface{}, lo, hi int64) bool {
	var f *big.Float
	switch v := instance.(type) {
	case float64:
		f = big.NewFloat(v)
	case json.Number:
		parsed, ok := new(big.Float).SetString(string(v))
		if !ok {
			return false
		}
		f = parsed
	default:
		return false
	}
	i, acc := f.Int(nil)
	if acc != big.Exact {
		return false
	}
	return i.IsInt64() && i.Int64() >= lo && i.Int64() <= hi
}
