// Package i18n renders validation messages. It owns the message templates
// per issue code and the {key} interpolation used by every template.
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

// Translator retrieves the message template for an issue code. Templates may
// reference {path}, {value}, {label} and any test parameter by name.
// ok is false when the translator has no entry for code.
type Translator interface {
	Template(code string) (tmpl string, ok bool)
}

// DefaultCode is the fallback entry used when no template exists for a code.
const DefaultCode = "default"

var dictionaries = map[string]map[string]string{
	"en": {
		DefaultCode:    "{path} is invalid",
		"invalid_type": "{path} must be a `{type}` type",
		"required":     "{path} is a required field",
		"defined":      "{path} must be defined",
		"nullable":     "{path} cannot be null",
		"oneOf":        "{path} must be one of the following values: {values}",
		"notOneOf":     "{path} must not be one of the following values: {values}",
		"is-value":     "{path} field must be {value}",
		"min":          "{path} must be at least {min}",
		"max":          "{path} must be at most {max}",
		"length":       "{path} must be exactly {length} characters",
		"matches":      "{path} must match the following: \"{regex}\"",
		"trim":         "{path} must be a trimmed string",
		"lowercase":    "{path} must be a lowercase string",
		"uppercase":    "{path} must be a upper case string",
		"moreThan":     "{path} must be greater than {more}",
		"lessThan":     "{path} must be less than {less}",
		"integer":      "{path} must be an integer",
		"expr":         "{path} does not satisfy {expr}",
	},
	"ja": {
		DefaultCode:    "{path} は不正です",
		"invalid_type": "{path} は `{type}` 型である必要があります",
		"required":     "{path} は必須です",
		"defined":      "{path} は未定義にできません",
		"nullable":     "{path} は null にできません",
		"oneOf":        "{path} は次のいずれかである必要があります: {values}",
		"notOneOf":     "{path} は次の値以外である必要があります: {values}",
		"is-value":     "{path} は {value} である必要があります",
		"min":          "{path} は {min} 以上である必要があります",
		"max":          "{path} は {max} 以下である必要があります",
		"length":       "{path} は {length} 文字である必要があります",
		"matches":      "{path} は \"{regex}\" に一致する必要があります",
		"integer":      "{path} は整数である必要があります",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Template(code string) (string, bool) {
	if s, ok := dictionaries[t.lang][code]; ok {
		return s, true
	}
	s, ok := dictionaries["en"][code]
	return s, ok
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// Template returns the template for code, falling back to the default entry.
func Template(code string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	if s, ok := tr.Template(code); ok {
		return s
	}
	if s, ok := tr.Template(DefaultCode); ok {
		return s
	}
	return code
}

// T renders the template for code with params.
func T(code string, params map[string]any) string { return Format(Template(code), params) }

// Format replaces every {key} in tmpl with the matching param. Unknown keys are
// left untouched.
func Format(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	b := &strings.Builder{}
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			break
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			break
		}
		key := tmpl[i+1 : i+j]
		b.WriteString(tmpl[:i])
		if v, ok := params[key]; ok {
			b.WriteString(Stringify(v))
		} else {
			b.WriteString(tmpl[i : i+j+1])
		}
		tmpl = tmpl[i+j+1:]
	}
	return b.String()
}

// Stringify prints a parameter the way it appears in messages.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
