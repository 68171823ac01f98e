package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/katalika-invoicing/config"
	"github.com/yourusername/katalika-invoicing/models"
)

// Record is one persisted collection: a key plus the JSON-encoded value.
// The table is the direct translation of the original key-value storage.
type Record struct {
	Key   string `gorm:"primaryKey;size:100"`
	Value []byte `gorm:"type:blob"`
}

func (Record) TableName() string {
	return "records"
}

// GormStore persists collections as JSON blobs in a single gorm-managed
// table. Reads load the full collection; writes replace it.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func getJSON[T any](db *gorm.DB, key string) ([]T, error) {
	var rec Record
	err := db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []T{}, nil
	}
	if err != nil {
		config.LogError(config.GetLogger(), "store", "getJSON", key, nil, err)
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var out []T
	if err := json.Unmarshal(rec.Value, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return out, nil
}

func saveJSON[T any](db *gorm.DB, key string, value []T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	rec := Record{Key: key, Value: data}
	if err := db.Save(&rec).Error; err != nil {
		config.LogError(config.GetLogger(), "store", "saveJSON", key, nil, err)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) GetCustomers() ([]models.Customer, error) {
	return getJSON[models.Customer](s.db, KeyCustomers)
}

func (s *GormStore) SaveCustomers(customers []models.Customer) error {
	return saveJSON(s.db, KeyCustomers, customers)
}

func (s *GormStore) GetOrders() ([]models.Order, error) {
	return getJSON[models.Order](s.db, KeyOrders)
}

func (s *GormStore) SaveOrders(orders []models.Order) error {
	return saveJSON(s.db, KeyOrders, orders)
}

func (s *GormStore) GetInvoices() ([]models.Invoice, error) {
	return getJSON[models.Invoice](s.db, KeyInvoices)
}

func (s *GormStore) SaveInvoices(invoices []models.Invoice) error {
	return saveJSON(s.db, KeyInvoices, invoices)
}

func (s *GormStore) GetUser() (*models.User, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", KeyUser).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KeyUser, err)
	}

	var user models.User
	if err := json.Unmarshal(rec.Value, &user); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", KeyUser, err)
	}
	return &user, nil
}

func (s *GormStore) SaveUser(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyUser, err)
	}
	rec := Record{Key: KeyUser, Value: data}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyUser, err)
	}
	return nil
}

func (s *GormStore) DeleteUser() error {
	if err := s.db.Delete(&Record{}, "key = ?", KeyUser).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", KeyUser, err)
	}
	return nil
}
