package models

import "gorm.io/gorm"

// SharedBarcodeData is the shared food catalog, keyed by barcode.
type SharedBarcodeData struct {
    gorm.Model
    Barcode     string  `gorm:"uniqueIndex;not null" json:"barcode"`
    Name        string  `gorm:"index;not null" json:"name"`
    ServingSize string  `json:"servingSize"`
    Carbs       float64 `json:"carbs"`
    Protein     float64 `json:"protein"`
    Fat         float64 `json:"fat"`
    Calories    float64 `json:"calories"`
}

func (SharedBarcodeData) TableName() string { return "shared_barcode_data" }

// CustomFood is a user-scoped food entry. The mobile client's persistence
// for custom foods was stubbed out; only catalog search reads this table
// and no dedicated mutation API exists until the contract is settled.
type CustomFood struct {
    gorm.Model
    UserID      uint    `gorm:"index;not null" json:"userId"`
    Name        string  `gorm:"index;not null" json:"name"`
    ServingSize string  `json:"servingSize"`
    Carbs       float64 `json:"carbs"`
    Protein     float64 `json:"protein"`
    Fat         float64 `json:"fat"`
    Calories    float64 `json:"calories"`
}
