package certificate

import (
	"context"
	"fmt"
	"sync"

	courseModels "courseverse/models/course"
)

// fakeStore is an in-memory RecordStore implementing the same contract as
// the Postgres-backed store: insert-only puts with collision detection and
// idempotent status transitions.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]courseModels.Certificate

	// failPuts makes the next N Put calls fail with ErrAlreadyExists,
	// simulating code collisions.
	failPuts int

	// infraErr, when set, is returned by every call to simulate an
	// unreachable store.
	infraErr error

	putCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]courseModels.Certificate)}
}

func (f *fakeStore) Get(_ context.Context, code string) (*courseModels.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.infraErr != nil {
		return nil, f.infraErr
	}
	rec, ok := f.records[code]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", code, ErrNotFound)
	}
	return &rec, nil
}

func (f *fakeStore) Put(_ context.Context, record *courseModels.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.infraErr != nil {
		return f.infraErr
	}
	f.putCalls++
	if f.failPuts > 0 {
		f.failPuts--
		return fmt.Errorf("put %q: %w", record.CertificateCode, ErrAlreadyExists)
	}
	if _, exists := f.records[record.CertificateCode]; exists {
		return fmt.Errorf("put %q: %w", record.CertificateCode, ErrAlreadyExists)
	}
	f.records[record.CertificateCode] = *record
	return nil
}

func (f *fakeStore) SetStatus(_ context.Context, code string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.infraErr != nil {
		return f.infraErr
	}
	rec, ok := f.records[code]
	if !ok {
		return fmt.Errorf("set status %q: %w", code, ErrNotFound)
	}
	if rec.Status == status {
		return nil
	}
	rec.Status = status
	f.records[code] = rec
	return nil
}
