package models

// MacroSet groups the four tracked macros.
type MacroSet struct {
    Carbs    float64 `json:"carbs"`
    Protein  float64 `json:"protein"`
    Fat      float64 `json:"fat"`
    Calories float64 `json:"calories"`
}

// DailyMacros is derived, never persisted: the day's consumed totals against
// the profile's limits, with the remaining budget floored at zero per field.
type DailyMacros struct {
    Date      string   `json:"date"`
    Total     MacroSet `json:"total"`
    Limit     MacroSet `json:"limit"`
    Remaining MacroSet `json:"remaining"`
}
