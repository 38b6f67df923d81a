package models

import (
    "gorm.io/gorm"
)

// Diet goals
const (
    GoalWeightLoss  = "weight_loss"
    GoalMaintenance = "maintenance"
    GoalMuscleGain  = "muscle_gain"
)

// Activity levels
const (
    ActivitySedentary  = "sedentary"
    ActivityLight      = "light"
    ActivityModerate   = "moderate"
    ActivityActive     = "active"
    ActivityVeryActive = "very_active"
)

// Display units. Weight and height are always stored in kg/cm; the unit
// fields only say how the client renders them.
const (
    WeightUnitKg   = "kg"
    WeightUnitLbs  = "lbs"
    HeightUnitCm   = "cm"
    HeightUnitFtIn = "ft_in"
)

// UserProfile holds one row per user. Weight is kilograms and height is
// centimeters regardless of the display-unit preference.
type UserProfile struct {
    gorm.Model
    UserID            uint    `gorm:"uniqueIndex;not null" json:"userId"`
    Name              string  `json:"name"`
    Weight            float64 `json:"weight"`
    Height            float64 `json:"height"`
    WeightUnit        string  `gorm:"size:8;default:kg" json:"weightUnit"`
    HeightUnit        string  `gorm:"size:8;default:cm" json:"heightUnit"`
    Goal              string  `gorm:"size:16;default:weight_loss" json:"goal"`
    ActivityLevel     string  `gorm:"size:16;default:sedentary" json:"activityLevel"`
    DailyCarbsLimit   float64 `json:"dailyCarbsLimit"`
    DailyProteinLimit float64 `json:"dailyProteinLimit"`
    DailyFatLimit     float64 `json:"dailyFatLimit"`
    DailyCalorieLimit float64 `json:"dailyCalorieLimit"`
}

// MacroLimit returns the configured daily limits. ok is false when the
// profile has never been given any limit, in which case callers fall back
// to the application default.
func (p *UserProfile) MacroLimit() (MacroSet, bool) {
    if p == nil {
        return MacroSet{}, false
    }
    if p.DailyCarbsLimit == 0 && p.DailyProteinLimit == 0 &&
        p.DailyFatLimit == 0 && p.DailyCalorieLimit == 0 {
        return MacroSet{}, false
    }
    return MacroSet{
        Carbs:    p.DailyCarbsLimit,
        Protein:  p.DailyProteinLimit,
        Fat:      p.DailyFatLimit,
        Calories: p.DailyCalorieLimit,
    }, true
}

func ValidGoal(g string) bool {
    switch g {
    case GoalWeightLoss, GoalMaintenance, GoalMuscleGain:
        return true
    }
    return false
}

func ValidActivityLevel(a string) bool {
    switch a {
    case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
        return true
    }
    return false
}
