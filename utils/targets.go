package utils

import (
    "errors"

    "github.com/itstoasti/KetoMate-sub001/models"
)

var activityMultipliers = map[string]float64{
    models.ActivitySedentary:  1.2,
    models.ActivityLight:      1.375,
    models.ActivityModerate:   1.55,
    models.ActivityActive:     1.725,
    models.ActivityVeryActive: 1.9,
}

var goalAdjustments = map[string]float64{
    models.GoalWeightLoss:  -500,
    models.GoalMaintenance: 0,
    models.GoalMuscleGain:  300,
}

// EstimateCalorieTarget expects height in centimeters and weight in
// kilograms, and returns a daily calorie target from a Mifflin-St Jeor
// style estimate scaled by activity level and shifted by the diet goal.
// Age and sex are not collected, so the neutral baseline is used.
func EstimateCalorieTarget(heightCm, weightKg float64, activityLevel, goal string) (float64, error) {
    if heightCm <= 0 || weightKg <= 0 {
        return 0, errors.New("height and weight must be positive")
    }
    // Sanity checks to avoid garbage input
    if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
        return 0, errors.New("height/weight out of plausible range")
    }

    mult, ok := activityMultipliers[activityLevel]
    if !ok {
        mult = activityMultipliers[models.ActivitySedentary]
    }
    adj := goalAdjustments[goal]

    bmr := 10*weightKg + 6.25*heightCm - 78
    target := bmr*mult + adj
    if target < 1200 {
        target = 1200
    }
    return target, nil
}

// DefaultMacroTargets splits a calorie target into a keto macro budget:
// carbs capped at 20 g, roughly 25% of calories from protein and the rest
// from fat.
func DefaultMacroTargets(calories float64) models.MacroSet {
    if calories <= 0 {
        return models.MacroSet{Carbs: 20, Protein: 120, Fat: 150, Calories: 1800}
    }
    carbs := 20.0
    protein := calories * 0.25 / 4
    fat := (calories - carbs*4 - protein*4) / 9
    if fat < 0 {
        fat = 0
    }
    return models.MacroSet{
        Carbs:    carbs,
        Protein:  protein,
        Fat:      fat,
        Calories: calories,
    }
}
