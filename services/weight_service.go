package services

import (
    "fmt"
    "sort"
    "time"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/models"
    "github.com/itstoasti/KetoMate-sub001/utils"
)

// normalizeWeight converts an input value to kilograms based on the unit
// the user entered it in.
func normalizeWeight(value float64, unit string) (float64, error) {
    switch unit {
    case "", models.WeightUnitKg:
        return value, nil
    case models.WeightUnitLbs, "lb":
        return utils.LbToKg(value), nil
    }
    return 0, fmt.Errorf("unknown weight unit %q", unit)
}

func AddWeightEntry(userID uint, value float64, unit string, at time.Time) (*models.WeightEntry, error) {
    kg, err := normalizeWeight(value, unit)
    if err != nil {
        return nil, err
    }
    if at.IsZero() {
        at = time.Now()
    }

    entry := &models.WeightEntry{UserID: userID, EntryDate: at, WeightKg: kg}
    if err := config.DB.Create(entry).Error; err != nil {
        return nil, err
    }

    if err := resyncProfileWeight(userID); err != nil {
        return nil, err
    }
    return entry, nil
}

// ListWeightHistory returns entries newest first.
func ListWeightHistory(userID uint) ([]models.WeightEntry, error) {
    var entries []models.WeightEntry
    err := config.DB.
        Where("user_id = ?", userID).
        Order("entry_date DESC").
        Find(&entries).Error
    return entries, err
}

func UpdateWeightEntry(userID, entryID uint, value float64, unit string, at *time.Time) (*models.WeightEntry, error) {
    kg, err := normalizeWeight(value, unit)
    if err != nil {
        return nil, err
    }

    var entry models.WeightEntry
    if err := config.DB.
        Where("id = ? AND user_id = ?", entryID, userID).
        First(&entry).Error; err != nil {
        return nil, err
    }

    entry.WeightKg = kg
    if at != nil {
        entry.EntryDate = *at
    }
    if err := config.DB.Save(&entry).Error; err != nil {
        return nil, err
    }

    if err := resyncProfileWeight(userID); err != nil {
        return nil, err
    }
    return &entry, nil
}

func DeleteWeightEntry(userID, entryID uint) error {
    var entry models.WeightEntry
    if err := config.DB.
        Where("id = ? AND user_id = ?", entryID, userID).
        First(&entry).Error; err != nil {
        return err
    }
    if err := config.DB.Delete(&entry).Error; err != nil {
        return err
    }
    return resyncProfileWeight(userID)
}

// SortEntriesDesc orders entries newest first, stable so an edited entry
// whose date stays the maximum keeps its position.
func SortEntriesDesc(entries []models.WeightEntry) {
    sort.SliceStable(entries, func(i, j int) bool {
        return entries[i].EntryDate.After(entries[j].EntryDate)
    })
}

// LatestWeightEntry picks the entry with the maximum date.
func LatestWeightEntry(entries []models.WeightEntry) (models.WeightEntry, bool) {
    if len(entries) == 0 {
        return models.WeightEntry{}, false
    }
    latest := entries[0]
    for _, e := range entries[1:] {
        if e.EntryDate.After(latest.EntryDate) {
            latest = e
        }
    }
    return latest, true
}

// NeedsProfileResync decides whether the profile's weight must be rewritten
// after an entry was touched (added, edited or deleted). It looks only at
// the post-mutation history: whenever the latest entry's value differs from
// the profile, the profile is stale, regardless of which entry was touched.
// Any mutation can make a different entry the latest, so no positional
// check on the touched entry is safe here; the value comparison alone
// keeps redundant writes out.
func NeedsProfileResync(remaining []models.WeightEntry, profileWeight float64) (float64, bool) {
    latest, ok := LatestWeightEntry(remaining)
    if !ok {
        // History emptied out: the profile keeps its last known weight.
        return 0, false
    }
    if latest.WeightKg == profileWeight {
        return 0, false
    }
    return latest.WeightKg, true
}

func resyncProfileWeight(userID uint) error {
    remaining, err := ListWeightHistory(userID)
    if err != nil {
        return err
    }
    profile, err := GetProfile(userID)
    if err != nil {
        return nil // no profile yet, nothing to mirror
    }

    newWeight, ok := NeedsProfileResync(remaining, profile.Weight)
    if !ok {
        return nil
    }
    return config.DB.
        Model(&models.UserProfile{}).
        Where("user_id = ?", userID).
        Update("weight", newWeight).Error
}
