// internal/messages/messages.go
//
// Loads the console texts from the embedded YAML catalogs in assets.
//
// Behavior:
//   - "en" is the reference catalog; every other language is decoded on top
//     of it, so a key missing from a translation falls back to English.
//   - Catalogs are decoded once per language and cached.
//   - Unknown languages return ErrUnknownLanguage.

package messages

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/baseball/assets"
	"github.com/robalobadob/baseball/internal/game"
)

// DefaultLanguage is the reference catalog.
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned when no catalog ships for a language.
var ErrUnknownLanguage = errors.New("unknown language")

var (
	mu    sync.Mutex
	cache = map[string]game.Messages{}
)

// Load returns the messages for lang.
func Load(lang string) (game.Messages, error) {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := cache[lang]; ok {
		return m, nil
	}

	var m game.Messages
	if lang != DefaultLanguage {
		if err := decode(DefaultLanguage, &m); err != nil {
			return game.Messages{}, err
		}
	}
	if err := decode(lang, &m); err != nil {
		return game.Messages{}, err
	}
	cache[lang] = m
	return m, nil
}

// decode unmarshals the catalog for lang over m, leaving absent keys untouched.
func decode(lang string, m *game.Messages) error {
	raw, err := assets.Catalog(lang)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if err != nil {
		return fmt.Errorf("read %s catalog: %w", lang, err)
	}
	if err := yaml.Unmarshal(raw, m); err != nil {
		return fmt.Errorf("decode %s catalog: %w", lang, err)
	}
	return nil
}
