package services

import (
    "time"

    "github.com/itstoasti/KetoMate-sub001/models"
)

const dateLayout = "2006-01-02"

// DefaultMacroLimit applies when a profile has no configured limits yet.
var DefaultMacroLimit = models.MacroSet{Carbs: 20, Protein: 120, Fat: 150, Calories: 1800}

// ComputeDailyMacros sums the macros of every meal falling on the target
// calendar day and subtracts them from the profile's limit. Meals with
// unparseable dates are skipped, never fatal. The remaining budget is
// floored at zero per field. Pure: callers persist or publish the result.
func ComputeDailyMacros(meals []models.Meal, date string, profile *models.UserProfile) models.DailyMacros {
    limit := DefaultMacroLimit
    if l, ok := profile.MacroLimit(); ok {
        limit = l
    }

    var total models.MacroSet
    if target, err := time.Parse(dateLayout, date); err == nil {
        ty, tm, td := target.Date()
        for _, m := range meals {
            d, err := time.Parse(dateLayout, m.EntryDate)
            if err != nil {
                continue
            }
            y, mo, dd := d.Date()
            if y != ty || mo != tm || dd != td {
                continue
            }
            total.Carbs += m.Carbs
            total.Protein += m.Protein
            total.Fat += m.Fat
            total.Calories += m.Calories
        }
    }

    return models.DailyMacros{
        Date:      date,
        Total:     total,
        Limit:     limit,
        Remaining: remainingBudget(limit, total),
    }
}

func remainingBudget(limit, total models.MacroSet) models.MacroSet {
    floor := func(v float64) float64 {
        if v < 0 {
            return 0
        }
        return v
    }
    return models.MacroSet{
        Carbs:    floor(limit.Carbs - total.Carbs),
        Protein:  floor(limit.Protein - total.Protein),
        Fat:      floor(limit.Fat - total.Fat),
        Calories: floor(limit.Calories - total.Calories),
    }
}
