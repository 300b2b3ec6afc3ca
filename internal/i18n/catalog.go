// Package i18n loads the localized message catalog used to build user-facing
// confirmation and error messages.
//
// Catalogs are YAML documents keyed by locale, with nested keys addressed by dotted
// paths ("subscriptions_management.update_address.success"). Values may contain
// %{name} placeholders which are filled in by T.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is the locale served when none is configured.
const DefaultLocale = "en"

//go:embed locales/*.yml
var localeFS embed.FS

// ErrMissingTranslation is returned when a key has no message in the catalog.
var ErrMissingTranslation = errors.New("missing translation")

var placeholderPattern = regexp.MustCompile(`%\{([a-z_]+)\}`)

// Catalog is an immutable set of messages for one locale. It is safe for concurrent use.
type Catalog struct {
	locale   string
	messages map[string]string
}

// Load reads the embedded catalog for locale.
func Load(locale string) (*Catalog, error) {
	data, err := localeFS.ReadFile("locales/" + locale + ".yml")
	if err != nil {
		return nil, fmt.Errorf("read locale %q: %w", locale, err)
	}
	return Parse(locale, data)
}

// Parse builds a catalog from a YAML document whose top-level key is the locale.
func Parse(locale string, data []byte) (*Catalog, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	root, ok := doc[locale].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse locale %q: missing top-level %q key", locale, locale)
	}

	messages := make(map[string]string)
	if err := flatten("", root, messages); err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	return &Catalog{locale: locale, messages: messages}, nil
}

// MustLoad is like Load but panics on error. Use it for the embedded catalogs at startup.
func MustLoad(locale string) *Catalog {
	c, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return c
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: unsupported value type %T", key, v)
		}
	}
	return nil
}

// Locale returns the locale of the catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// T returns the message for key with its %{name} placeholders replaced from args.
// A missing key or a placeholder without a value is an error.
func (c *Catalog) T(key string, args map[string]string) (string, error) {
	msg, ok := c.messages[key]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrMissingTranslation, c.locale, key)
	}

	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(msg, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		v, ok := args[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("%s.%s: missing interpolation values: %s", c.locale, key, strings.Join(missing, ", "))
	}
	return out, nil
}

// Text is T for messages without placeholders. It returns the key itself when the
// message is missing so that presentation never renders an empty string.
func (c *Catalog) Text(key string) string {
	msg, err := c.T(key, nil)
	if err != nil {
		return key
	}
	return msg
}
