package services

import (
    "strconv"
    "strings"

    "github.com/itstoasti/KetoMate-sub001/utils"
)

// AnalysisOutcome is the three-way result of an AI food analysis: a usable
// food record, a "the model could not identify this" marker, or a total
// parse failure. Callers must branch on Outcome, never on nil-ness alone.
type AnalysisOutcome string

const (
    AnalysisSuccess  AnalysisOutcome = "success"
    AnalysisNotFound AnalysisOutcome = "not_found"
    AnalysisFailed   AnalysisOutcome = "parse_failed"
)

// ParsedFood is the structured record extracted from an AI response.
type ParsedFood struct {
    Name         string  `json:"name"`
    ServingSize  string  `json:"servingSize"`
    Calories     float64 `json:"calories"`
    Carbs        float64 `json:"carbs"`
    Protein      float64 `json:"protein"`
    Fat          float64 `json:"fat"`
    KetoFriendly bool    `json:"ketoFriendly"`
}

// FoodAnalysis tags the outcome. Query carries the original query string on
// the not-found branch; Food is set only on success.
type FoodAnalysis struct {
    Outcome AnalysisOutcome `json:"outcome"`
    Query   string          `json:"query,omitempty"`
    Food    *ParsedFood     `json:"food,omitempty"`
}

// ParseFoodAnalysis reads the "Key: value" line protocol the text endpoint
// is prompted to emit (Status, Name, Serving Size, Calories, Carbs,
// Protein, Fat). Keys are matched case-insensitively on the text before the
// first colon; numeric values coerce with a zero fallback. Three outcomes:
// Status NotFound wins, a response with no recognizable field at all is a
// parse failure, anything else is a success.
func ParseFoodAnalysis(text, query string) *FoodAnalysis {
    food := ParsedFood{}
    status := ""
    recognized := false

    for _, line := range strings.Split(text, "\n") {
        idx := strings.Index(line, ":")
        if idx < 0 {
            continue
        }
        key := strings.ToLower(strings.TrimSpace(line[:idx]))
        value := strings.TrimSpace(line[idx+1:])

        switch key {
        case "status":
            status = strings.ToLower(value)
            recognized = true
        case "name":
            food.Name = value
            recognized = true
        case "serving size":
            food.ServingSize = value
            recognized = true
        case "calories":
            food.Calories = coerceNumber(value)
            recognized = true
        case "carbs":
            food.Carbs = coerceNumber(value)
            recognized = true
        case "protein":
            food.Protein = coerceNumber(value)
            recognized = true
        case "fat":
            food.Fat = coerceNumber(value)
            recognized = true
        }
    }

    if status == "notfound" || status == "not found" {
        return &FoodAnalysis{Outcome: AnalysisNotFound, Query: query}
    }
    if !recognized {
        return &FoodAnalysis{Outcome: AnalysisFailed, Query: query}
    }

    food.KetoFriendly = utils.IsKetoFriendly(food.Carbs)
    return &FoodAnalysis{Outcome: AnalysisSuccess, Food: &food}
}

// coerceNumber pulls the leading numeric figure out of values like "12.5g"
// or "~120 kcal", falling back to zero.
func coerceNumber(value string) float64 {
    s := strings.TrimSpace(value)
    s = strings.TrimLeft(s, "~< ")
    end := 0
    for end < len(s) {
        c := s[end]
        if (c >= '0' && c <= '9') || c == '.' || (end == 0 && c == '-') {
            end++
            continue
        }
        break
    }
    if end == 0 {
        return 0
    }
    n, err := strconv.ParseFloat(s[:end], 64)
    if err != nil {
        return 0
    }
    return n
}
