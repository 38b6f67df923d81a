package models

// The mobile client speaks camelCase; the database speaks snake_case. The
// mapping below is the single source of truth for every updatable profile
// field; reads and writes both go through it rather than ad hoc renames.
var profileColumns = map[string]string{
    "name":              "name",
    "weight":            "weight",
    "height":            "height",
    "weightUnit":        "weight_unit",
    "heightUnit":        "height_unit",
    "goal":              "goal",
    "activityLevel":     "activity_level",
    "dailyCarbsLimit":   "daily_carbs_limit",
    "dailyProteinLimit": "daily_protein_limit",
    "dailyFatLimit":     "daily_fat_limit",
    "dailyCalorieLimit": "daily_calorie_limit",
}

var profileFields = func() map[string]string {
    inv := make(map[string]string, len(profileColumns))
    for f, c := range profileColumns {
        inv[c] = f
    }
    return inv
}()

// ProfileColumnFor maps an app-side field name to its database column.
func ProfileColumnFor(field string) (string, bool) {
    c, ok := profileColumns[field]
    return c, ok
}

// ProfileFieldFor maps a database column back to the app-side field name.
func ProfileFieldFor(column string) (string, bool) {
    f, ok := profileFields[column]
    return f, ok
}

// ProfileFieldNames lists every mapped app-side field.
func ProfileFieldNames() []string {
    names := make([]string, 0, len(profileColumns))
    for f := range profileColumns {
        names = append(names, f)
    }
    return names
}

// ProfileUpdate is a partial update. Nil pointers mean "leave untouched":
// they never show up in the payload, so the server side is never reset to a
// zero value by omission.
type ProfileUpdate struct {
    Name              *string  `json:"name"`
    Weight            *float64 `json:"weight"`
    Height            *float64 `json:"height"`
    WeightUnit        *string  `json:"weightUnit"`
    HeightUnit        *string  `json:"heightUnit"`
    Goal              *string  `json:"goal"`
    ActivityLevel     *string  `json:"activityLevel"`
    DailyCarbsLimit   *float64 `json:"dailyCarbsLimit"`
    DailyProteinLimit *float64 `json:"dailyProteinLimit"`
    DailyFatLimit     *float64 `json:"dailyFatLimit"`
    DailyCalorieLimit *float64 `json:"dailyCalorieLimit"`
}

// Payload builds the column-keyed map passed to gorm Updates. Only fields
// present in the partial update appear.
func (u ProfileUpdate) Payload() map[string]any {
    p := make(map[string]any)
    if u.Name != nil {
        p[profileColumns["name"]] = *u.Name
    }
    if u.Weight != nil {
        p[profileColumns["weight"]] = *u.Weight
    }
    if u.Height != nil {
        p[profileColumns["height"]] = *u.Height
    }
    if u.WeightUnit != nil {
        p[profileColumns["weightUnit"]] = *u.WeightUnit
    }
    if u.HeightUnit != nil {
        p[profileColumns["heightUnit"]] = *u.HeightUnit
    }
    if u.Goal != nil {
        p[profileColumns["goal"]] = *u.Goal
    }
    if u.ActivityLevel != nil {
        p[profileColumns["activityLevel"]] = *u.ActivityLevel
    }
    if u.DailyCarbsLimit != nil {
        p[profileColumns["dailyCarbsLimit"]] = *u.DailyCarbsLimit
    }
    if u.DailyProteinLimit != nil {
        p[profileColumns["dailyProteinLimit"]] = *u.DailyProteinLimit
    }
    if u.DailyFatLimit != nil {
        p[profileColumns["dailyFatLimit"]] = *u.DailyFatLimit
    }
    if u.DailyCalorieLimit != nil {
        p[profileColumns["dailyCalorieLimit"]] = *u.DailyCalorieLimit
    }
    return p
}
