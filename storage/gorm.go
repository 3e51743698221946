package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-frontdesk/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository stores the snapshot as a JSON column in the snapshots table.
type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

// Migrate creates the snapshots table when it does not exist.
func (r *GormRepository) Migrate() error {
	return r.DB.AutoMigrate(&models.SnapshotRecord{})
}

func (r *GormRepository) Load(ctx context.Context) (models.Snapshot, error) {
	var rec models.SnapshotRecord
	err := r.DB.WithContext(ctx).Where("`key` = ?", SnapshotKey).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		return models.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return DecodeSnapshot(rec.Payload)
}

func (r *GormRepository) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	rec := models.SnapshotRecord{
		Key:       SnapshotKey,
		Payload:   datatypes.JSON(data),
		UpdatedAt: time.Now().UTC(),
	}
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *GormRepository) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
