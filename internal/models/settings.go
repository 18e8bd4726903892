package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Themes the UI collaborator can persist.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings holds the remaining persisted state that is neither a
// budget record nor the streak: the UI theme and the timestamp of the
// last payday check. There is exactly one row.
type Settings struct {
	Timestamps
	ID              uint       `json:"-" gorm:"primaryKey"`
	Theme           string     `json:"theme" example:"dark" default:"light"`           // dark or light
	LastPaydayCheck *time.Time `json:"lastPaydayCheck" example:"2025-03-15T00:00:00Z"` // When the payday event last fired, null when it never did
}

const settingsRowID = 1

func (s *Settings) BeforeSave(_ *gorm.DB) error {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return ErrThemeInvalid
	}

	return nil
}

// GetSettings returns the settings record, creating the default on
// first use.
func GetSettings() (Settings, error) {
	settings := Settings{ID: settingsRowID, Theme: ThemeLight}
	err := DB.FirstOrCreate(&settings, Settings{ID: settingsRowID}).Error
	return settings, err
}

// LastPaydayCheck returns the timestamp of the last payday check, or
// the zero time when the check never fired.
func LastPaydayCheck() (time.Time, error) {
	settings, err := GetSettings()
	if err != nil {
		return time.Time{}, err
	}

	if settings.LastPaydayCheck == nil {
		return time.Time{}, nil
	}

	return *settings.LastPaydayCheck, nil
}

// SetLastPaydayCheck advances the payday check timestamp to now.
func SetLastPaydayCheck(now time.Time) error {
	return setLastPaydayCheck(DB, now)
}

func setLastPaydayCheck(tx *gorm.DB, now time.Time) error {
	settings := Settings{ID: settingsRowID, Theme: ThemeLight}
	err := tx.FirstOrCreate(&settings, Settings{ID: settingsRowID}).Error
	if err != nil {
		return err
	}

	settings.LastPaydayCheck = &now
	return tx.Save(&settings).Error
}

// SetTheme persists the UI theme.
func SetTheme(theme string) (Settings, error) {
	settings, err := GetSettings()
	if err != nil {
		return Settings{}, err
	}

	settings.Theme = theme
	err = DB.Save(&settings).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// Returns the settings record for export
func (Settings) Export() (json.RawMessage, error) {
	settings, err := GetSettings()
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&settings)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
