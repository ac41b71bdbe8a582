package storage

import "time"

// PreferenceModel is the GORM model for the preferences table
type PreferenceModel struct {
	CreatedAt   time.Time
	Profile     string  `gorm:"primaryKey"`
	ScopeHostID string  `gorm:"not null;default:''"`
	UpdatedAt   time.Time
	Zoom        float64 `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM
func (PreferenceModel) TableName() string { return "preferences" }

// HostSelectionModel remembers the last active session of one host
type HostSelectionModel struct {
	CreatedAt   time.Time
	HostID      string `gorm:"primaryKey"`
	Profile     string `gorm:"primaryKey;index:idx_host_selection_profile"`
	SessionName string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (HostSelectionModel) TableName() string { return "host_selections" }
