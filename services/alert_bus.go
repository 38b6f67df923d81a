package services

import (
    "time"

    "gorm.io/gorm"

    "github.com/itstoasti/KetoMate-sub001/models"
)

type alertDeps struct {
    db *gorm.DB
    rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
    _alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists and broadcasts an alert. Safe to call anywhere; a
// no-op until InitAlertDeps has run.
func EmitAlert(userID uint, typ, message string) {
    if _alert.db == nil {
        return
    }
    a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
    _ = _alert.db.Create(a).Error

    if _alert.rt != nil {
        _alert.rt.BroadcastAlert(userID, a)
    }
}
