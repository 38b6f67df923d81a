package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal types
const (
    MealBreakfast = "breakfast"
    MealLunch     = "lunch"
    MealDinner    = "dinner"
    MealSnack     = "snack"
)

func ValidMealType(t string) bool {
    switch t {
    case MealBreakfast, MealLunch, MealDinner, MealSnack:
        return true
    }
    return false
}

// One logged meal. EntryDate is the calendar day ("2006-01-02"); AteAt keeps
// the time of day. Meals are immutable after creation except for deletion.
type Meal struct {
    gorm.Model
    UserID    uint       `gorm:"index;not null" json:"userId"`
    Type      string     `gorm:"column:meal_type;size:16;not null" json:"type"`
    EntryDate string     `gorm:"size:10;index" json:"date"`
    AteAt     time.Time  `json:"time"`
    Carbs     float64    `json:"carbs"`
    Protein   float64    `json:"protein"`
    Fat       float64    `json:"fat"`
    Calories  float64    `json:"calories"`
    Items     []MealFood `json:"items"`
}

// MealFood is a constituent food snapshot on a meal.
type MealFood struct {
    gorm.Model
    MealID       uint    `gorm:"index" json:"mealId"`
    Name         string  `json:"name"`
    ServingSize  string  `json:"servingSize"`
    Carbs        float64 `json:"carbs"`
    Protein      float64 `json:"protein"`
    Fat          float64 `json:"fat"`
    Calories     float64 `json:"calories"`
    KetoFriendly bool    `json:"ketoFriendly"`
}
