package services

import (
    "errors"
    "fmt"
    "strings"

    "gorm.io/gorm"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/models"
    "github.com/itstoasti/KetoMate-sub001/utils"
)

type FoodService struct {
    assistant *AssistantService
}

func NewFoodService(assistant *AssistantService) *FoodService {
    return &FoodService{assistant: assistant}
}

// FoodResult is one catalog hit, from either the shared barcode table or
// the user's custom foods.
type FoodResult struct {
    ID           uint    `json:"id"`
    Name         string  `json:"name"`
    ServingSize  string  `json:"servingSize"`
    Carbs        float64 `json:"carbs"`
    Protein      float64 `json:"protein"`
    Fat          float64 `json:"fat"`
    Calories     float64 `json:"calories"`
    KetoFriendly bool    `json:"ketoFriendly"`
    Source       string  `json:"source"` // "shared" | "custom"
}

// Search matches the query as a case-insensitive substring of the food
// name across the shared catalog and the user's custom foods.
func (s *FoodService) Search(userID uint, query string) ([]FoodResult, error) {
    query = strings.TrimSpace(query)
    if query == "" {
        return nil, fmt.Errorf("query is required")
    }
    pattern := "%" + query + "%"

    var shared []models.SharedBarcodeData
    if err := config.DB.
        Where("name ILIKE ?", pattern).
        Limit(25).
        Find(&shared).Error; err != nil {
        return nil, err
    }

    var custom []models.CustomFood
    if err := config.DB.
        Where("user_id = ? AND name ILIKE ?", userID, pattern).
        Limit(25).
        Find(&custom).Error; err != nil {
        return nil, err
    }

    out := make([]FoodResult, 0, len(shared)+len(custom))
    for _, f := range shared {
        out = append(out, FoodResult{
            ID: f.ID, Name: f.Name, ServingSize: f.ServingSize,
            Carbs: f.Carbs, Protein: f.Protein, Fat: f.Fat, Calories: f.Calories,
            KetoFriendly: utils.IsKetoFriendly(f.Carbs), Source: "shared",
        })
    }
    for _, f := range custom {
        out = append(out, FoodResult{
            ID: f.ID, Name: f.Name, ServingSize: f.ServingSize,
            Carbs: f.Carbs, Protein: f.Protein, Fat: f.Fat, Calories: f.Calories,
            KetoFriendly: utils.IsKetoFriendly(f.Carbs), Source: "custom",
        })
    }
    return out, nil
}

// LookupBarcode checks the shared catalog first and falls back to asking
// the AI about the code. An unrecognized barcode comes back as the
// not-found analysis outcome, not an error.
func (s *FoodService) LookupBarcode(code string) (*FoodAnalysis, error) {
    var row models.SharedBarcodeData
    err := config.DB.Where("barcode = ?", code).First(&row).Error
    if err == nil {
        return &FoodAnalysis{
            Outcome: AnalysisSuccess,
            Food: &ParsedFood{
                Name:         row.Name,
                ServingSize:  row.ServingSize,
                Calories:     row.Calories,
                Carbs:        row.Carbs,
                Protein:      row.Protein,
                Fat:          row.Fat,
                KetoFriendly: utils.IsKetoFriendly(row.Carbs),
            },
        }, nil
    }
    if !errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, err
    }
    return s.assistant.AnalyzeFood("Unknown Barcode " + code)
}
