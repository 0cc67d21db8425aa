package kv

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blobRecord is the single-table schema the database driver persists into:
// one row per logical key holding the whole serialized blob.
type blobRecord struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value []byte `gorm:"column:value"`
}

func (blobRecord) TableName() string {
	return "kv_blobs"
}

// DatabaseStore keeps blobs in a kv_blobs table through GORM.
type DatabaseStore struct {
	conn *gorm.DB
}

// NewDatabaseStore migrates the blob table and returns the store.
func NewDatabaseStore(conn *gorm.DB) (*DatabaseStore, error) {
	if conn == nil {
		return nil, fmt.Errorf("gorm connection is required")
	}
	if err := conn.AutoMigrate(&blobRecord{}); err != nil {
		return nil, fmt.Errorf("migrating kv_blobs: %w", err)
	}
	return &DatabaseStore{conn: conn}, nil
}

func (s *DatabaseStore) Load(ctx context.Context, key string) ([]byte, error) {
	var record blobRecord
	err := s.conn.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	return record.Value, nil
}

func (s *DatabaseStore) Save(ctx context.Context, key string, blob []byte) error {
	record := blobRecord{Key: key, Value: blob}
	err := s.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
