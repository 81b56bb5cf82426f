package jtd

import (
	"net/url"
	"strings"
)

// isAbsoluteURI reports whether s has both a scheme and an authority.
func isAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// splitRef separates a ref string into its non-fragment URI part and its
// fragment (without the leading '#').
func splitRef(ref string) (base, fragment string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}

// resolveRelativeURI resolves relative against base the way a browser
// resolves a relative href: absolute URIs pass through unchanged.
func resolveRelativeURI(base, relative string) (string, bool) {
	if relative == "" {
		return base, true
	}
	if isAbsoluteURI(relative) {
		return relative, true
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" {
		return "", false
	}
	relURL, err := url.Parse(relative)
	if err != nil {
		return "", false
	}
	return baseURL.ResolveReference(relURL).String(), true
}
