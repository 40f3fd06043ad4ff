package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KVRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// KVStore keeps each collection as a single JSON blob row keyed by its
// logical name.
type KVStore struct {
	database *gorm.DB
}

func NewKVStore(database *gorm.DB) *KVStore {
	return &KVStore{database: database}
}

func (store *KVStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}

	record := KVRecord{Key: key, Value: data, UpdatedAt: time.Now()}
	return store.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (store *KVStore) Fetch(key string, dest any) (bool, error) {
	record := KVRecord{}
	result := store.database.Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := json.Unmarshal(record.Value, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return true, nil
}
