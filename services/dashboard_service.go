package services

import (
    "errors"
    "sync"

    "github.com/itstoasti/KetoMate-sub001/models"
)

// ErrLoadDiscarded means the load finished after the user began signing
// out; its result must not repopulate any state.
var ErrLoadDiscarded = errors.New("load discarded: user signed out")

type Dashboard struct {
    Profile       *models.UserProfile  `json:"profile"`
    Meals         []models.Meal        `json:"meals"`
    WeightHistory []models.WeightEntry `json:"weightHistory"`
    Macros        models.DailyMacros   `json:"macros"`
}

type DashboardService struct {
    meals    *MealService
    sessions *SessionRegistry
}

func NewDashboardService(meals *MealService, sessions *SessionRegistry) *DashboardService {
    return &DashboardService{meals: meals, sessions: sessions}
}

// Load fans out the three independent reads concurrently and joins them.
// The first error wins and nothing is retried. A missing profile is not an
// error; default macro limits apply.
func (s *DashboardService) Load(userID uint, date string) (*Dashboard, error) {
    var (
        profile *models.UserProfile
        meals   []models.Meal
        weights []models.WeightEntry
    )

    var wg sync.WaitGroup
    errCh := make(chan error, 3)

    wg.Add(3)
    go func() {
        defer wg.Done()
        p, err := profileOrDefault(GetProfile(userID))
        if err != nil {
            errCh <- err
            return
        }
        profile = p
    }()
    go func() {
        defer wg.Done()
        m, err := s.meals.ListMealsByDate(userID, date)
        if err != nil {
            errCh <- err
            return
        }
        meals = m
    }()
    go func() {
        defer wg.Done()
        w, err := ListWeightHistory(userID)
        if err != nil {
            errCh <- err
            return
        }
        weights = w
    }()
    wg.Wait()
    close(errCh)
    if err := <-errCh; err != nil {
        return nil, err
    }

    if s.sessions != nil && !s.sessions.AcceptLoad(userID) {
        return nil, ErrLoadDiscarded
    }

    return &Dashboard{
        Profile:       profile,
        Meals:         meals,
        WeightHistory: weights,
        Macros:        ComputeDailyMacros(meals, date, profile),
    }, nil
}
