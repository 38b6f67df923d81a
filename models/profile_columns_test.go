package models

import (
    "testing"
)

func TestProfileColumnMappingIsTotalAndBidirectional(t *testing.T) {
    for _, field := range ProfileFieldNames() {
        col, ok := ProfileColumnFor(field)
        if !ok {
            t.Fatalf("no column for field %q", field)
        }
        back, ok := ProfileFieldFor(col)
        if !ok {
            t.Fatalf("no field for column %q", col)
        }
        if back != field {
            t.Errorf("round trip %q -> %q -> %q", field, col, back)
        }
    }
}

func TestProfileColumnForKnownFields(t *testing.T) {
    cases := map[string]string{
        "activityLevel":     "activity_level",
        "weightUnit":        "weight_unit",
        "dailyCarbsLimit":   "daily_carbs_limit",
        "dailyCalorieLimit": "daily_calorie_limit",
        "name":              "name",
    }
    for field, want := range cases {
        got, ok := ProfileColumnFor(field)
        if !ok || got != want {
            t.Errorf("ProfileColumnFor(%q) = %q, %v; want %q", field, got, ok, want)
        }
    }
    if _, ok := ProfileColumnFor("noSuchField"); ok {
        t.Error("unknown field should not map")
    }
}

func TestPayloadContainsOnlyPresentFields(t *testing.T) {
    w := 80.0
    p := ProfileUpdate{Weight: &w}.Payload()
    if len(p) != 1 {
        t.Fatalf("payload = %v, want exactly one key", p)
    }
    if got, ok := p["weight"]; !ok || got != 80.0 {
        t.Errorf("payload[weight] = %v, %v; want 80", got, ok)
    }
}

func TestPayloadEmptyUpdate(t *testing.T) {
    if p := (ProfileUpdate{}).Payload(); len(p) != 0 {
        t.Errorf("empty update produced payload %v", p)
    }
}

func TestPayloadUsesSnakeCaseColumns(t *testing.T) {
    lvl := ActivityModerate
    limit := 25.0
    p := ProfileUpdate{ActivityLevel: &lvl, DailyCarbsLimit: &limit}.Payload()
    if p["activity_level"] != ActivityModerate {
        t.Errorf("activity_level = %v", p["activity_level"])
    }
    if p["daily_carbs_limit"] != 25.0 {
        t.Errorf("daily_carbs_limit = %v", p["daily_carbs_limit"])
    }
    if _, leaked := p["activityLevel"]; leaked {
        t.Error("camelCase key leaked into store payload")
    }
}
