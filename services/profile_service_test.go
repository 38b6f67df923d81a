package services

import (
    "errors"
    "testing"

    "gorm.io/gorm"

    "github.com/itstoasti/KetoMate-sub001/models"
)

func TestProfileOrDefault(t *testing.T) {
    p := &models.UserProfile{UserID: 1}
    got, err := profileOrDefault(p, nil)
    if err != nil || got != p {
        t.Errorf("successful read must pass through, got %v, %v", got, err)
    }

    got, err = profileOrDefault(nil, gorm.ErrRecordNotFound)
    if err != nil || got != nil {
        t.Errorf("missing profile maps to nil with no error, got %v, %v", got, err)
    }

    storeErr := errors.New("connection reset")
    if _, err = profileOrDefault(nil, storeErr); !errors.Is(err, storeErr) {
        t.Errorf("store error must propagate, got %v", err)
    }
}
