package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the key-value persistence contract of the invoice session
// (counter and history). Values are JSON payloads; last write wins.
type KVEntry struct {
	Key       string         `json:"key" gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `json:"value" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updated_at"`
}
