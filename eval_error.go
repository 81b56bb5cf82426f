package jtd

import (
	"fmt"
	"strings"
)

// EvaluationError is a human-readable sibling of ValidationError: the same
// mismatch, carrying a stable Code and template Params instead of only a
// machine-oriented JSON Pointer pair. It exists purely as a convenience —
// Validator.Validate's []ValidationError remains the canonical, portable
// result — for applications that want a localized message alongside the
// pointer pair, the same two-tier shape the teacher's EvaluationResult
// offers via ToList vs. its raw Errors map.
type EvaluationError struct {
	ValidationError
	Code    string
	Message string
	Params  map[string]interface{}
}

// messageTemplates maps each schema-path keyword JSL's evaluator can end
// a path on to a human-readable template, substituted the way the
// teacher's replace() does ({placeholder} tokens).
var messageTemplates = map[string]string{
	"type":               "Value at {instance} does not match type {keyword}",
	"enum":               "Value at {instance} is not one of the enumerated values",
	"elements":           "Value at {instance} is not an array",
	"values":             "Value at {instance} is not an object",
	"properties":         "Value at {instance} is not an object, or is missing a required property",
	"optionalProperties": "Value at {instance} is not an object",
	"tag":                "Value at {instance} is missing or has an invalid discriminator tag",
	"mapping":            "Value at {instance} has a discriminator tag with no matching mapping entry",
}

// ToEvaluationErrors enriches a ValidationError list with a Code, a
// default English Message, and Params for later localization.
func ToEvaluationErrors(errs []ValidationError) []EvaluationError {
	out := make([]EvaluationError, len(errs))
	for i, e := range errs {
		code := "mismatch"
		if len(e.SchemaPath) > 0 {
			code = e.SchemaPath[len(e.SchemaPath)-1]
		}
		params := map[string]interface{}{
			"instance": e.InstancePointer(),
			"schema":   e.SchemaPointer(),
			"keyword":  code,
		}
		template, ok := messageTemplates[code]
		if !ok {
			template = "Value at {instance} does not satisfy {schema}"
		}
		out[i] = EvaluationError{
			ValidationError: e,
			Code:            code,
			Message:         replaceParams(template, params),
			Params:          params,
		}
	}
	return out
}

func (e EvaluationError) Error() string { return e.Message }

func replaceParams(template string, params map[string]interface{}) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}
