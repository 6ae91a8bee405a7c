// ABOUTME: Durable user preferences stored in the settings namespace
// ABOUTME: Boolean toggles serialized as the literal strings "true"/"false"

package session

import (
	"fmt"
	"strconv"

	"github.com/chroniclehq/chronicle/internal/storage"
)

// Persisted settings keys.
const (
	SettingLastOpenEntry     = "lastOpenEntry"
	SettingGlassTheme        = "glassTheme"
	SettingBackgroundEnabled = "backgroundEnabled"
)

// Prefs tracks the named boolean preferences. Values are read once at
// startup and written on every toggle; an absent key defaults to
// false.
type Prefs struct {
	store storage.Store

	GlassTheme        bool
	BackgroundEnabled bool
}

// LoadPrefs reads the preference toggles from the store.
func LoadPrefs(store storage.Store) (*Prefs, error) {
	p := &Prefs{store: store}
	var err error
	if p.GlassTheme, err = loadBool(store, SettingGlassTheme); err != nil {
		return nil, err
	}
	if p.BackgroundEnabled, err = loadBool(store, SettingBackgroundEnabled); err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleGlassTheme flips the glass theme toggle and persists it.
func (p *Prefs) ToggleGlassTheme() (bool, error) {
	p.GlassTheme = !p.GlassTheme
	return p.GlassTheme, saveBool(p.store, SettingGlassTheme, p.GlassTheme)
}

// ToggleBackground flips the background toggle and persists it.
func (p *Prefs) ToggleBackground() (bool, error) {
	p.BackgroundEnabled = !p.BackgroundEnabled
	return p.BackgroundEnabled, saveBool(p.store, SettingBackgroundEnabled, p.BackgroundEnabled)
}

func loadBool(store storage.Store, key string) (bool, error) {
	value, ok, err := store.GetSetting(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	return value == "true", nil
}

func saveBool(store storage.Store, key string, value bool) error {
	if err := store.SetSetting(key, strconv.FormatBool(value)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
