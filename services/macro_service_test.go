package services

import (
    "testing"

    "github.com/itstoasti/KetoMate-sub001/models"
)

func mealOn(date string, m models.MacroSet) models.Meal {
    return models.Meal{
        EntryDate: date,
        Carbs:     m.Carbs,
        Protein:   m.Protein,
        Fat:       m.Fat,
        Calories:  m.Calories,
    }
}

func TestComputeDailyMacrosFilterAndSum(t *testing.T) {
    meals := []models.Meal{
        mealOn("2025-03-10", models.MacroSet{Carbs: 5, Protein: 10, Fat: 8, Calories: 120}),
        mealOn("2025-03-10", models.MacroSet{Carbs: 3, Protein: 20, Fat: 15, Calories: 230}),
        mealOn("2025-03-11", models.MacroSet{Carbs: 50, Protein: 5, Fat: 2, Calories: 300}),
    }

    got := ComputeDailyMacros(meals, "2025-03-10", nil)

    want := models.MacroSet{Carbs: 8, Protein: 30, Fat: 23, Calories: 350}
    if got.Total != want {
        t.Errorf("total = %+v, want %+v", got.Total, want)
    }
}

func TestComputeDailyMacrosSkipsMalformedDates(t *testing.T) {
    meals := []models.Meal{
        mealOn("2025-03-10", models.MacroSet{Carbs: 5}),
        mealOn("not-a-date", models.MacroSet{Carbs: 100}),
        mealOn("", models.MacroSet{Carbs: 100}),
    }

    got := ComputeDailyMacros(meals, "2025-03-10", nil)
    if got.Total.Carbs != 5 {
        t.Errorf("total carbs = %v, want 5 (malformed dates excluded)", got.Total.Carbs)
    }
}

func TestComputeDailyMacrosDefaultLimit(t *testing.T) {
    got := ComputeDailyMacros(nil, "2025-03-10", nil)
    if got.Limit != DefaultMacroLimit {
        t.Errorf("limit = %+v, want default %+v", got.Limit, DefaultMacroLimit)
    }

    // A profile with no configured limits also falls back.
    got = ComputeDailyMacros(nil, "2025-03-10", &models.UserProfile{})
    if got.Limit != DefaultMacroLimit {
        t.Errorf("limit with blank profile = %+v, want default", got.Limit)
    }
}

func TestComputeDailyMacrosProfileLimit(t *testing.T) {
    profile := &models.UserProfile{
        DailyCarbsLimit:   25,
        DailyProteinLimit: 100,
        DailyFatLimit:     140,
        DailyCalorieLimit: 1700,
    }
    got := ComputeDailyMacros(nil, "2025-03-10", profile)
    want := models.MacroSet{Carbs: 25, Protein: 100, Fat: 140, Calories: 1700}
    if got.Limit != want {
        t.Errorf("limit = %+v, want %+v", got.Limit, want)
    }
}

func TestRemainingNeverNegative(t *testing.T) {
    meals := []models.Meal{
        mealOn("2025-03-10", models.MacroSet{Carbs: 500, Protein: 500, Fat: 500, Calories: 9000}),
    }
    got := ComputeDailyMacros(meals, "2025-03-10", nil)

    zero := models.MacroSet{}
    if got.Remaining != zero {
        t.Errorf("remaining = %+v, want all zero when over budget", got.Remaining)
    }
}

func TestRemainingPerFieldIndependent(t *testing.T) {
    // Carbs blown, everything else under budget.
    meals := []models.Meal{
        mealOn("2025-03-10", models.MacroSet{Carbs: 35, Protein: 40, Fat: 50, Calories: 800}),
    }
    got := ComputeDailyMacros(meals, "2025-03-10", nil)

    if got.Remaining.Carbs != 0 {
        t.Errorf("remaining carbs = %v, want 0", got.Remaining.Carbs)
    }
    if got.Remaining.Protein != 80 {
        t.Errorf("remaining protein = %v, want 80", got.Remaining.Protein)
    }
    if got.Remaining.Fat != 100 {
        t.Errorf("remaining fat = %v, want 100", got.Remaining.Fat)
    }
    if got.Remaining.Calories != 1000 {
        t.Errorf("remaining calories = %v, want 1000", got.Remaining.Calories)
    }
}

func TestSingleMealEndToEnd(t *testing.T) {
    meals := []models.Meal{
        mealOn("2025-03-10", models.MacroSet{Carbs: 5, Protein: 10, Fat: 8, Calories: 120}),
    }
    got := ComputeDailyMacros(meals, "2025-03-10", nil)

    wantTotal := models.MacroSet{Carbs: 5, Protein: 10, Fat: 8, Calories: 120}
    if got.Total != wantTotal {
        t.Fatalf("total = %+v, want %+v", got.Total, wantTotal)
    }
    wantRemaining := models.MacroSet{
        Carbs:    DefaultMacroLimit.Carbs - 5,
        Protein:  DefaultMacroLimit.Protein - 10,
        Fat:      DefaultMacroLimit.Fat - 8,
        Calories: DefaultMacroLimit.Calories - 120,
    }
    if got.Remaining != wantRemaining {
        t.Errorf("remaining = %+v, want %+v", got.Remaining, wantRemaining)
    }
}

func TestComputeDailyMacrosInvalidTargetDate(t *testing.T) {
    meals := []models.Meal{
        mealOn("2025-03-10", models.MacroSet{Carbs: 5}),
    }
    got := ComputeDailyMacros(meals, "garbage", nil)
    if got.Total.Carbs != 0 {
        t.Errorf("total = %+v, want zero totals for unparseable target", got.Total)
    }
}
