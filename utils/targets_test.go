package utils

import (
    "testing"

    "github.com/itstoasti/KetoMate-sub001/models"
)

func TestEstimateCalorieTargetRejectsGarbage(t *testing.T) {
    if _, err := EstimateCalorieTarget(0, 80, models.ActivitySedentary, models.GoalWeightLoss); err == nil {
        t.Error("zero height must error")
    }
    if _, err := EstimateCalorieTarget(175, 900, models.ActivitySedentary, models.GoalWeightLoss); err == nil {
        t.Error("implausible weight must error")
    }
}

func TestEstimateCalorieTargetOrdering(t *testing.T) {
    loss, err := EstimateCalorieTarget(175, 80, models.ActivityModerate, models.GoalWeightLoss)
    if err != nil {
        t.Fatal(err)
    }
    maint, _ := EstimateCalorieTarget(175, 80, models.ActivityModerate, models.GoalMaintenance)
    gain, _ := EstimateCalorieTarget(175, 80, models.ActivityModerate, models.GoalMuscleGain)

    if !(loss < maint && maint < gain) {
        t.Errorf("expected loss < maintenance < gain, got %v / %v / %v", loss, maint, gain)
    }
}

func TestEstimateCalorieTargetFloor(t *testing.T) {
    got, err := EstimateCalorieTarget(150, 45, models.ActivitySedentary, models.GoalWeightLoss)
    if err != nil {
        t.Fatal(err)
    }
    if got < 1200 {
        t.Errorf("target %v fell below the floor", got)
    }
}

func TestDefaultMacroTargetsKetoSplit(t *testing.T) {
    got := DefaultMacroTargets(2000)
    if got.Carbs != 20 {
        t.Errorf("carbs = %v, want capped at 20", got.Carbs)
    }
    if got.Protein != 2000*0.25/4 {
        t.Errorf("protein = %v", got.Protein)
    }
    if got.Calories != 2000 {
        t.Errorf("calories = %v", got.Calories)
    }
    if got.Fat <= 0 {
        t.Errorf("fat = %v, want positive", got.Fat)
    }
}

func TestDefaultMacroTargetsZeroCalories(t *testing.T) {
    got := DefaultMacroTargets(0)
    want := models.MacroSet{Carbs: 20, Protein: 120, Fat: 150, Calories: 1800}
    if got != want {
        t.Errorf("fallback = %+v, want %+v", got, want)
    }
}
