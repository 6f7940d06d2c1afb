package display

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
)

// StorageKey is the key the dark mode flag is persisted under.
const StorageKey = "darkMode"

// Preferences holds the light/dark display mode.
type Preferences struct {
	kv     core.StorageProvider
	logger core.Logger
}

func NewPreferences(kv core.StorageProvider, logger core.Logger) *Preferences {
	return &Preferences{kv: kv, logger: logger}
}

// DarkMode reports whether dark mode is on. Only the stored value "true" turns it on.
func (p *Preferences) DarkMode() bool {
	val, _, err := p.kv.Get(StorageKey)
	if err != nil {
		p.logger.Error("display: failed to read "+StorageKey, errors.Wrap(err, "reading dark mode"))
		return false
	}
	return val == "true"
}

func (p *Preferences) SetDarkMode(on bool) error {
	return errors.Wrap(p.kv.Set(StorageKey, strconv.FormatBool(on)), "saving dark mode")
}

// ToggleDarkMode flips the mode and returns the new value.
func (p *Preferences) ToggleDarkMode() (bool, error) {
	on := !p.DarkMode()
	if err := p.SetDarkMode(on); err != nil {
		return !on, err
	}
	return on, nil
}
