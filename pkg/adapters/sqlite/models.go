package sqlite

import "time"

// SettingModel is one row per settings key.
type SettingModel struct {
	Key       string `gorm:"column:setting_key;primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (SettingModel) TableName() string { return "settings" }
