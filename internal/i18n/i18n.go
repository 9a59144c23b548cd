// Package i18n provides the UI language switcher and string lookup.
// Two languages are supported; translations are compiled into the binary.
// A Translator is constructed explicitly and passed down — there is no
// package-level active language.
package i18n

import (
	"fmt"
	"sync"
)

type Lang string

const (
	LangEnglish Lang = "en"
	LangHindi   Lang = "hi"
)

// DefaultLang is the fallback when a key has no translation in the
// active language.
const DefaultLang = LangEnglish

// ErrUnsupportedLang rejects anything outside the two supported codes.
type ErrUnsupportedLang struct {
	Lang Lang
}

func (e *ErrUnsupportedLang) Error() string {
	return fmt.Sprintf("unsupported language %q", e.Lang)
}

func Supported(l Lang) bool {
	return l == LangEnglish || l == LangHindi
}

// Translator holds the active UI language.
type Translator struct {
	mu   sync.RWMutex
	lang Lang
}

func NewTranslator() *Translator {
	return &Translator{lang: DefaultLang}
}

// SetLanguage switches the active language. Selecting the already active
// language is a no-op; unsupported codes are rejected.
func (t *Translator) SetLanguage(l Lang) error {
	if !Supported(l) {
		return &ErrUnsupportedLang{Lang: l}
	}
	t.mu.Lock()
	t.lang = l
	t.mu.Unlock()
	return nil
}

func (t *Translator) Language() Lang {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T returns the localized string for key in the active language.
// Extra args are passed to fmt.Sprintf when the translation contains
// format verbs. Lookup falls back key → English → key itself, so nothing
// is ever silently swallowed.
func (t *Translator) T(key string, args ...interface{}) string {
	langMap, ok := translations[key]
	if !ok {
		return key
	}

	tmpl, ok := langMap[t.Language()]
	if !ok {
		tmpl, ok = langMap[DefaultLang]
		if !ok {
			return key
		}
	}

	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
