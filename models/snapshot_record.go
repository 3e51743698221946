package models

import (
	"time"

	"gorm.io/datatypes"
)

// SnapshotRecord is the relational row holding one serialized Snapshot.
type SnapshotRecord struct {
	Key       string         `gorm:"column:key;primaryKey;type:varchar(64)" json:"key"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (SnapshotRecord) TableName() string { return "snapshots" }
