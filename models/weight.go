package models

import (
    "time"

    "gorm.io/gorm"
)

// WeightEntry records one weigh-in. WeightKg is always kilograms; whatever
// unit the user typed is converted before the row is written.
type WeightEntry struct {
    gorm.Model
    UserID    uint      `gorm:"index;not null" json:"userId"`
    EntryDate time.Time `gorm:"index;not null" json:"entryDate"`
    WeightKg  float64   `json:"weightKg"`
}
