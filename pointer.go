package jtd

import "github.com/kaptinlin/jsonpointer"

// formatPointer is the single place token slices become RFC 6901 strings,
// per §9's "keep path composition in one place" note.
func formatPointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return jsonpointer.Format(tokens...)
}
