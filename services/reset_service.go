package services

import (
    "fmt"
    "strings"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/models"
)

// ResetUserData wipes the user's meals, weight history and alerts and puts
// the profile back to defaults. Steps run in order with no rollback of
// completed deletions; failures are collected and surfaced together.
func ResetUserData(userID uint) error {
    var failures []string

    if err := config.DB.
        Where("meal_id IN (?)", config.DB.
            Model(&models.Meal{}).
            Select("id").
            Where("user_id = ?", userID)).
        Delete(&models.MealFood{}).Error; err != nil {
        failures = append(failures, fmt.Sprintf("meal items: %v", err))
    }
    if err := config.DB.
        Where("user_id = ?", userID).
        Delete(&models.Meal{}).Error; err != nil {
        failures = append(failures, fmt.Sprintf("meals: %v", err))
    }
    if err := config.DB.
        Where("user_id = ?", userID).
        Delete(&models.WeightEntry{}).Error; err != nil {
        failures = append(failures, fmt.Sprintf("weight history: %v", err))
    }
    if err := config.DB.
        Where("user_id = ?", userID).
        Delete(&models.Alert{}).Error; err != nil {
        failures = append(failures, fmt.Sprintf("alerts: %v", err))
    }

    if err := config.DB.
        Model(&models.UserProfile{}).
        Where("user_id = ?", userID).
        Updates(map[string]any{
            "weight":              0,
            "height":              0,
            "goal":                models.GoalWeightLoss,
            "activity_level":      models.ActivitySedentary,
            "daily_carbs_limit":   0,
            "daily_protein_limit": 0,
            "daily_fat_limit":     0,
            "daily_calorie_limit": 0,
        }).Error; err != nil {
        failures = append(failures, fmt.Sprintf("profile: %v", err))
    }

    if len(failures) > 0 {
        return fmt.Errorf("reset incomplete: %s", strings.Join(failures, "; "))
    }
    return nil
}
