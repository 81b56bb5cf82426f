package jtd

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.I18n
	bundleErr  error
)

// Bundle loads the embedded locale catalogs. It is built lazily and
// cached: most processes need exactly one, shared by every caller.
func Bundle() (*i18n.I18n, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(i18n.WithDefaultLocale("en"), i18n.WithLocales("en", "zh-Hans"))
		if err := b.LoadFS(localeFS, "locales/*.json"); err != nil {
			bundleErr = err
			return
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Localize renders an EvaluationError's message in the given localizer's
// language, falling back to the default English Message if the code has
// no catalog entry.
func (e EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Message
	}
	msg := localizer.Get(e.Code, i18n.Vars(e.Params))
	if msg == "" {
		return e.Message
	}
	return msg
}

// LocalizeAll renders a whole EvaluationError slice in one language.
func LocalizeAll(errs []EvaluationError, localizer *i18n.Localizer) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Localize(localizer)
	}
	return out
}
