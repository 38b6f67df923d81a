package services

import (
    "fmt"
    "time"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/models"
    "github.com/itstoasti/KetoMate-sub001/utils"
)

type MealService struct {
    hub *RealtimeHub
}

func NewMealService(hub *RealtimeHub) *MealService {
    return &MealService{hub: hub}
}

type MealFoodRequest struct {
    Name        string  `json:"name"`
    ServingSize string  `json:"servingSize"`
    Carbs       float64 `json:"carbs"`
    Protein     float64 `json:"protein"`
    Fat         float64 `json:"fat"`
    Calories    float64 `json:"calories"`
}

// AddMeal stores a meal with its food snapshots and the summed macros, then
// publishes the day's recomputed totals. Meals are immutable afterwards
// except for deletion.
func (s *MealService) AddMeal(
    userID uint,
    mealType, date string,
    ateAt time.Time,
    items []MealFoodRequest,
) (*models.Meal, error) {
    if !models.ValidMealType(mealType) {
        return nil, fmt.Errorf("invalid meal type %q", mealType)
    }
    day, err := time.Parse(dateLayout, date)
    if err != nil {
        return nil, fmt.Errorf("invalid meal date %q: %w", date, err)
    }
    if ateAt.IsZero() {
        ateAt = time.Now()
    }

    var total models.MacroSet
    for _, it := range items {
        total.Carbs += it.Carbs
        total.Protein += it.Protein
        total.Fat += it.Fat
        total.Calories += it.Calories
    }

    meal := &models.Meal{
        UserID:    userID,
        Type:      mealType,
        EntryDate: day.Format(dateLayout),
        AteAt:     ateAt,
        Carbs:     total.Carbs,
        Protein:   total.Protein,
        Fat:       total.Fat,
        Calories:  total.Calories,
    }
    if err := config.DB.Create(meal).Error; err != nil {
        return nil, err
    }

    for _, it := range items {
        mf := &models.MealFood{
            MealID:       meal.ID,
            Name:         it.Name,
            ServingSize:  it.ServingSize,
            Carbs:        it.Carbs,
            Protein:      it.Protein,
            Fat:          it.Fat,
            Calories:     it.Calories,
            KetoFriendly: utils.IsKetoFriendly(it.Carbs),
        }
        if err := config.DB.Create(mf).Error; err != nil {
            return nil, err
        }
    }

    var populated models.Meal
    if err := config.DB.Preload("Items").First(&populated, meal.ID).Error; err != nil {
        return nil, err
    }

    s.publishDailyMacros(userID, meal.EntryDate)
    return &populated, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
    var meals []models.Meal
    err := config.DB.
        Preload("Items").
        Where("user_id = ?", userID).
        Order("entry_date DESC, ate_at DESC").
        Find(&meals).Error
    return meals, err
}

func (s *MealService) ListMealsByDate(userID uint, date string) ([]models.Meal, error) {
    var meals []models.Meal
    err := config.DB.
        Preload("Items").
        Where("user_id = ? AND entry_date = ?", userID, date).
        Order("ate_at ASC").
        Find(&meals).Error
    return meals, err
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
    var meal models.Meal
    if err := config.DB.
        Where("id = ? AND user_id = ?", mealID, userID).
        First(&meal).Error; err != nil {
        return err // could be ErrRecordNotFound
    }
    if err := config.DB.
        Where("meal_id = ?", meal.ID).
        Delete(&models.MealFood{}).Error; err != nil {
        return err
    }
    if err := config.DB.Delete(&meal).Error; err != nil {
        return err
    }

    s.publishDailyMacros(userID, meal.EntryDate)
    return nil
}

// GetDailyMacros computes one day's totals against the user's limits.
func (s *MealService) GetDailyMacros(userID uint, date string) (models.DailyMacros, error) {
    meals, err := s.ListMealsByDate(userID, date)
    if err != nil {
        return models.DailyMacros{}, err
    }
    profile, err := profileOrDefault(GetProfile(userID))
    if err != nil {
        return models.DailyMacros{}, err
    }
    return ComputeDailyMacros(meals, date, profile), nil
}

// publishDailyMacros pushes the recomputed day over the hub and raises an
// over-limit alert when the carb budget is blown. Broadcast problems never
// fail the mutation that triggered them.
func (s *MealService) publishDailyMacros(userID uint, date string) {
    macros, err := s.GetDailyMacros(userID, date)
    if err != nil {
        return
    }
    if s.hub != nil {
        s.hub.BroadcastMacros(userID, macros)
    }
    if macros.Total.Carbs > macros.Limit.Carbs {
        EmitAlert(userID, "warning", fmt.Sprintf(
            "Carbs over budget: %.0fg of %.0fg for %s",
            macros.Total.Carbs, macros.Limit.Carbs, date,
        ))
    }
}
