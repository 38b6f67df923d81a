package services

import (
    "fmt"
    "strings"
    "time"
)

// SuggestionService asks the text endpoint for keto meal ideas that fit
// inside what is left of today's macro budget.
type SuggestionService struct {
    meals *MealService
    llm   *LLMService
}

func NewSuggestionService(meals *MealService, llm *LLMService) *SuggestionService {
    return &SuggestionService{meals: meals, llm: llm}
}

func (s *SuggestionService) SuggestMeals(userID uint) ([]string, error) {
    today := time.Now().Format(dateLayout)
    macros, err := s.meals.GetDailyMacros(userID, today)
    if err != nil {
        return nil, fmt.Errorf("failed to compute today's macros: %w", err)
    }

    prompt := fmt.Sprintf(
        `Suggest 3 keto-friendly meals that fit this remaining daily budget:
%.0fg carbs, %.0fg protein, %.0fg fat, %.0f calories.
One suggestion per line, no numbering, no extra text.`,
        macros.Remaining.Carbs, macros.Remaining.Protein,
        macros.Remaining.Fat, macros.Remaining.Calories,
    )

    text, err := s.llm.Complete([]ChatMessage{{Role: "user", Content: prompt}})
    if err != nil {
        return nil, err
    }

    var suggestions []string
    for _, line := range strings.Split(text, "\n") {
        line = strings.TrimSpace(strings.TrimLeft(line, "-*•0123456789. "))
        if line != "" {
            suggestions = append(suggestions, line)
        }
    }
    return suggestions, nil
}
