package services

import (
    "time"

    "gorm.io/gorm"

    "github.com/itstoasti/KetoMate-sub001/models"
)

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService {
    return &SummaryService{db: db}
}

type WeeklySummary struct {
    Range struct {
        From string `json:"from"`
        To   string `json:"to"`
    } `json:"range"`

    AvgDaily         models.MacroSet `json:"avg_daily"`
    DaysLogged       int             `json:"days_logged"`
    DaysOverCarbs    int             `json:"days_over_carbs"`
    CarbLimit        float64         `json:"carb_limit"`
    WeightChangeKg   float64         `json:"weight_change_kg"`
    WeightEntryCount int             `json:"weight_entry_count"`
}

// Summary averages the daily macro totals over the last `days` days and
// reports weight movement across the same window. Only days with at least
// one logged meal count toward the averages.
func (s *SummaryService) Summary(userID uint, days int) (*WeeklySummary, error) {
    if days <= 0 {
        days = 7
    }
    to := time.Now()
    from := to.AddDate(0, 0, -(days - 1))
    fromDate := from.Format(dateLayout)
    toDate := to.Format(dateLayout)

    var meals []models.Meal
    if err := s.db.
        Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, fromDate, toDate).
        Find(&meals).Error; err != nil {
        return nil, err
    }

    limit := DefaultMacroLimit
    var profile models.UserProfile
    if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
        if l, ok := profile.MacroLimit(); ok {
            limit = l
        }
    }

    byDay := make(map[string]models.MacroSet)
    for _, m := range meals {
        d := byDay[m.EntryDate]
        d.Carbs += m.Carbs
        d.Protein += m.Protein
        d.Fat += m.Fat
        d.Calories += m.Calories
        byDay[m.EntryDate] = d
    }

    out := &WeeklySummary{CarbLimit: limit.Carbs}
    out.Range.From = fromDate
    out.Range.To = toDate
    out.DaysLogged = len(byDay)

    var sum models.MacroSet
    for _, d := range byDay {
        sum.Carbs += d.Carbs
        sum.Protein += d.Protein
        sum.Fat += d.Fat
        sum.Calories += d.Calories
        if d.Carbs > limit.Carbs {
            out.DaysOverCarbs++
        }
    }
    if n := float64(len(byDay)); n > 0 {
        out.AvgDaily = models.MacroSet{
            Carbs:    sum.Carbs / n,
            Protein:  sum.Protein / n,
            Fat:      sum.Fat / n,
            Calories: sum.Calories / n,
        }
    }

    var weights []models.WeightEntry
    if err := s.db.
        Where("user_id = ? AND entry_date >= ?", userID, from).
        Order("entry_date ASC").
        Find(&weights).Error; err != nil {
        return nil, err
    }
    out.WeightEntryCount = len(weights)
    if len(weights) >= 2 {
        out.WeightChangeKg = weights[len(weights)-1].WeightKg - weights[0].WeightKg
    }

    return out, nil
}
