package certificate

import (
	"context"
	"errors"
	"fmt"

	courseModels "courseverse/models/course"

	"gorm.io/gorm"
)

// RecordStore is the durable mapping from a certificate code to its record.
// Records are insert-only; the only permitted mutation is the one-way
// active -> revoked status transition.
type RecordStore interface {
	// Get returns the record for code, or ErrNotFound.
	Get(ctx context.Context, code string) (*courseModels.Certificate, error)

	// Put inserts a new record. Fails with ErrAlreadyExists if the code
	// collides with an existing record.
	Put(ctx context.Context, record *courseModels.Certificate) error

	// SetStatus transitions the record's status. Fails with ErrNotFound if
	// the code is unknown; revoking an already-revoked record is a no-op.
	SetStatus(ctx context.Context, code string, status string) error
}

// GormStore is the PostgreSQL-backed RecordStore
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, code string) (*courseModels.Certificate, error) {
	var record courseModels.Certificate
	err := s.db.WithContext(ctx).Where("certificate_code = ?", code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("get %q: %v", code, err)
	}
	return &record, nil
}

func (s *GormStore) Put(ctx context.Context, record *courseModels.Certificate) error {
	err := s.db.WithContext(ctx).Create(record).Error
	if err != nil {
		// Unique index on certificate_code turns a collision into a
		// duplicated-key error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("put %q: %w", record.CertificateCode, ErrAlreadyExists)
		}
		return fmt.Errorf("put %q: %v", record.CertificateCode, err)
	}
	return nil
}

func (s *GormStore) SetStatus(ctx context.Context, code string, status string) error {
	var record courseModels.Certificate
	err := s.db.WithContext(ctx).Where("certificate_code = ?", code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("set status %q: %w", code, ErrNotFound)
		}
		return fmt.Errorf("set status %q: %v", code, err)
	}

	// Idempotent: a second revoke leaves the record untouched.
	if record.Status == status {
		return nil
	}

	err = s.db.WithContext(ctx).
		Model(&courseModels.Certificate{}).
		Where("certificate_code = ?", code).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("set status %q: %v", code, err)
	}

	// Read the write back so the transition is visible to every lookup
	// once this call returns.
	var check courseModels.Certificate
	if err := s.db.WithContext(ctx).Where("certificate_code = ?", code).First(&check).Error; err != nil {
		return fmt.Errorf("set status %q: readback: %v", code, err)
	}
	if check.Status != status {
		return fmt.Errorf("set status %q: transition not visible after write", code)
	}
	return nil
}
