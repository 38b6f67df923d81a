package services

import (
    "testing"
    "time"

    "github.com/itstoasti/KetoMate-sub001/models"
)

func entry(id uint, day string, kg float64) models.WeightEntry {
    d, _ := time.Parse("2006-01-02", day)
    e := models.WeightEntry{EntryDate: d, WeightKg: kg}
    e.ID = id
    return e
}

func TestSortEntriesDescKeepsEditedLatestFirst(t *testing.T) {
    entries := []models.WeightEntry{
        entry(3, "2025-03-12", 81.5), // latest, just edited
        entry(2, "2025-03-10", 82),
        entry(1, "2025-03-08", 83),
    }
    SortEntriesDesc(entries)

    if entries[0].ID != 3 {
        t.Errorf("entries[0].ID = %d, want 3 (edited entry stays at index 0 while its date is max)", entries[0].ID)
    }
}

func TestLatestWeightEntry(t *testing.T) {
    entries := []models.WeightEntry{
        entry(1, "2025-03-08", 83),
        entry(3, "2025-03-12", 81.5),
        entry(2, "2025-03-10", 82),
    }
    latest, ok := LatestWeightEntry(entries)
    if !ok || latest.ID != 3 {
        t.Errorf("latest = %+v, ok = %v; want id 3", latest, ok)
    }

    if _, ok := LatestWeightEntry(nil); ok {
        t.Error("empty history must report no latest entry")
    }
}

func TestNeedsProfileResyncEditLatest(t *testing.T) {
    remaining := []models.WeightEntry{
        entry(3, "2025-03-12", 80), // latest, just edited
        entry(2, "2025-03-10", 82),
    }

    newWeight, ok := NeedsProfileResync(remaining, 81.5)
    if !ok || newWeight != 80 {
        t.Errorf("resync = %v, %v; want 80, true", newWeight, ok)
    }
}

func TestNeedsProfileResyncEditOlderEntrySkips(t *testing.T) {
    remaining := []models.WeightEntry{
        entry(3, "2025-03-12", 81.5),
        entry(2, "2025-03-10", 70), // edited, still not the latest
    }

    if _, ok := NeedsProfileResync(remaining, 81.5); ok {
        t.Error("editing a non-latest entry must not rewrite the profile weight")
    }
}

// Backdating the latest entry past an older one promotes that older entry
// to latest; the profile must follow it.
func TestNeedsProfileResyncBackdatedLatestEdit(t *testing.T) {
    remaining := []models.WeightEntry{
        entry(2, "2025-03-10", 82),
        entry(3, "2025-03-08", 80), // was 2025-03-12, date moved back
    }

    newWeight, ok := NeedsProfileResync(remaining, 80)
    if !ok || newWeight != 82 {
        t.Errorf("resync = %v, %v; want 82, true (older entry became the latest)", newWeight, ok)
    }
}

func TestNeedsProfileResyncDeleteLatest(t *testing.T) {
    remaining := []models.WeightEntry{
        entry(2, "2025-03-10", 82),
        entry(1, "2025-03-08", 83),
    }

    newWeight, ok := NeedsProfileResync(remaining, 81.5)
    if !ok || newWeight != 82 {
        t.Errorf("resync = %v, %v; want 82, true (fall back to new latest)", newWeight, ok)
    }
}

func TestNeedsProfileResyncSkipsRedundantWrite(t *testing.T) {
    remaining := []models.WeightEntry{
        entry(3, "2025-03-12", 81.5),
        entry(2, "2025-03-10", 82),
    }

    // Latest value already matches the profile: no write.
    if _, ok := NeedsProfileResync(remaining, 81.5); ok {
        t.Error("matching value must not trigger a redundant profile write")
    }
}

func TestNeedsProfileResyncEmptiedHistory(t *testing.T) {
    if _, ok := NeedsProfileResync(nil, 83); ok {
        t.Error("deleting the last entry keeps the profile's last known weight")
    }
}

func TestNormalizeWeight(t *testing.T) {
    kg, err := normalizeWeight(100, models.WeightUnitKg)
    if err != nil || kg != 100 {
        t.Errorf("kg passthrough = %v, %v", kg, err)
    }

    kg, err = normalizeWeight(180, models.WeightUnitLbs)
    if err != nil {
        t.Fatal(err)
    }
    want := 180 * 0.453592
    if kg != want {
        t.Errorf("180 lbs = %v kg, want %v", kg, want)
    }

    if _, err := normalizeWeight(100, "stone"); err == nil {
        t.Error("unknown unit must error")
    }
}
