package services

import (
    "errors"
    "net/http"
    "testing"
)

func TestParseFoodAnalysisSuccess(t *testing.T) {
    text := `Status: Found
Name: Cheddar Cheese
Serving Size: 1 oz (28g)
Calories: 113
Carbs: 0.4
Protein: 7
Fat: 9.3`

    got := ParseFoodAnalysis(text, "cheddar")
    if got.Outcome != AnalysisSuccess {
        t.Fatalf("outcome = %v, want success", got.Outcome)
    }
    f := got.Food
    if f.Name != "Cheddar Cheese" || f.ServingSize != "1 oz (28g)" {
        t.Errorf("name/serving = %q / %q", f.Name, f.ServingSize)
    }
    if f.Calories != 113 || f.Carbs != 0.4 || f.Protein != 7 || f.Fat != 9.3 {
        t.Errorf("macros = %+v", f)
    }
    if !f.KetoFriendly {
        t.Error("0.4g carbs should be keto-friendly")
    }
}

func TestParseFoodAnalysisNotFound(t *testing.T) {
    text := "Status: NotFound\nName: Unknown Barcode 123\nServing Size: \nCalories: 0"

    got := ParseFoodAnalysis(text, "Unknown Barcode 123")
    if got.Outcome != AnalysisNotFound {
        t.Fatalf("outcome = %v, want not_found", got.Outcome)
    }
    if got.Query != "Unknown Barcode 123" {
        t.Errorf("query = %q, want the original query carried through", got.Query)
    }
    if got.Food != nil {
        t.Error("not-found result must not carry a food record")
    }
}

func TestParseFoodAnalysisTotalFailure(t *testing.T) {
    got := ParseFoodAnalysis("I'm sorry, I can't help with that.", "mystery")
    if got.Outcome != AnalysisFailed {
        t.Fatalf("outcome = %v, want parse_failed", got.Outcome)
    }
    if got.Food != nil {
        t.Error("failed parse must not carry a food record")
    }
}

func TestParseFoodAnalysisThreeOutcomesDistinct(t *testing.T) {
    success := ParseFoodAnalysis("Name: Egg\nCarbs: 1", "egg")
    notFound := ParseFoodAnalysis("Status: NotFound", "egg")
    failed := ParseFoodAnalysis("no structure here", "egg")

    if success.Outcome == notFound.Outcome || notFound.Outcome == failed.Outcome || success.Outcome == failed.Outcome {
        t.Errorf("outcomes not distinct: %v / %v / %v", success.Outcome, notFound.Outcome, failed.Outcome)
    }
}

func TestParseFoodAnalysisNumericCoercion(t *testing.T) {
    text := "Name: Butter\nCalories: about 100\nCarbs: 0.1g\nProtein: n/a\nFat: 11.5 g"

    got := ParseFoodAnalysis(text, "butter")
    if got.Outcome != AnalysisSuccess {
        t.Fatalf("outcome = %v", got.Outcome)
    }
    if got.Food.Calories != 0 {
        t.Errorf("calories = %v, want 0 fallback for non-leading-numeric value", got.Food.Calories)
    }
    if got.Food.Carbs != 0.1 {
        t.Errorf("carbs = %v, want 0.1", got.Food.Carbs)
    }
    if got.Food.Protein != 0 {
        t.Errorf("protein = %v, want 0 fallback", got.Food.Protein)
    }
    if got.Food.Fat != 11.5 {
        t.Errorf("fat = %v, want 11.5", got.Food.Fat)
    }
}

func TestParseFoodAnalysisHighCarbNotKeto(t *testing.T) {
    got := ParseFoodAnalysis("Name: White Rice\nCarbs: 45", "rice")
    if got.Outcome != AnalysisSuccess {
        t.Fatalf("outcome = %v", got.Outcome)
    }
    if got.Food.KetoFriendly {
        t.Error("45g carbs must not be keto-friendly")
    }
}

func TestAnalyzeFoodMarksEndpointFailure(t *testing.T) {
    // No API key configured: the completion call fails before any request
    // goes out, and the failure must carry the assistant sentinel.
    svc := NewAssistantService(&LLMService{client: &http.Client{}, model: "test"})

    _, err := svc.AnalyzeFood("cheddar")
    if !errors.Is(err, ErrAssistantUnavailable) {
        t.Errorf("err = %v, want ErrAssistantUnavailable", err)
    }
}
