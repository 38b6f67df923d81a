package services

import "testing"

func TestParseLabelScanStrictJSON(t *testing.T) {
    text := `{"name": "Almond Butter", "servingSize": "2 tbsp", "calories": 190, "carbs": 6, "protein": 7, "fat": 17}`

    got := ParseLabelScan(text)
    if got.Outcome != AnalysisSuccess {
        t.Fatalf("outcome = %v, want success", got.Outcome)
    }
    if got.Food.Name != "Almond Butter" || got.Food.Calories != 190 {
        t.Errorf("food = %+v", got.Food)
    }
    if !got.Food.KetoFriendly {
        t.Error("6g carbs should be keto-friendly")
    }
}

func TestParseLabelScanCodeFencedJSON(t *testing.T) {
    text := "```json\n{\"name\": \"Jerky\", \"servingSize\": \"1 oz\", \"calories\": 80, \"carbs\": 3, \"protein\": 12, \"fat\": 1}\n```"

    got := ParseLabelScan(text)
    if got.Outcome != AnalysisSuccess {
        t.Fatalf("outcome = %v, want success for fenced JSON", got.Outcome)
    }
    if got.Food.Name != "Jerky" {
        t.Errorf("name = %q", got.Food.Name)
    }
}

func TestParseLabelScanErrorKey(t *testing.T) {
    got := ParseLabelScan(`{"error": "label unreadable"}`)
    if got.Outcome != AnalysisNotFound {
        t.Fatalf("outcome = %v, want not_found for error key", got.Outcome)
    }
}

func TestParseLabelScanRegexFallback(t *testing.T) {
    text := "The label shows roughly Calories: 250 per serving but the rest is blurry."

    got := ParseLabelScan(text)
    if got.Outcome != AnalysisSuccess {
        t.Fatalf("outcome = %v, want success via calories fallback", got.Outcome)
    }
    if got.Food.Calories != 250 {
        t.Errorf("calories = %v, want 250", got.Food.Calories)
    }
    if got.Food.KetoFriendly {
        t.Error("fallback result must not claim keto-friendliness with unknown carbs")
    }
}

func TestParseLabelScanUnusable(t *testing.T) {
    got := ParseLabelScan("completely unrelated text")
    if got.Outcome != AnalysisFailed {
        t.Fatalf("outcome = %v, want parse_failed", got.Outcome)
    }
}

func TestStripDataURI(t *testing.T) {
    cases := map[string]string{
        "data:image/jpeg;base64,abc123": "abc123",
        "abc123":                        "abc123",
        "data:image/png;base64,xyz":     "xyz",
    }
    for in, want := range cases {
        if got := StripDataURI(in); got != want {
            t.Errorf("StripDataURI(%q) = %q, want %q", in, got, want)
        }
    }
}

func TestExtractJSONFromProse(t *testing.T) {
    text := `Here is the result: {"name": "x"} hope that helps`
    if got := ExtractJSON(text); got != `{"name": "x"}` {
        t.Errorf("ExtractJSON = %q", got)
    }
}
