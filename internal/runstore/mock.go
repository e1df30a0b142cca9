package runstore

import (
	"time"

	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/stretchr/testify/mock"
)

// MockRunStoreManager is a mock implementation of RunStoreManager for testing.
type MockRunStoreManager struct {
	mock.Mock
}

var _ contract.RunStoreManager = &MockRunStoreManager{} // Compile-time check

// GetRunStore implements the RunStoreManager interface.
func (m *MockRunStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, params map[string]any) (int64, error) {
	args := m.Called(startTime, params)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalRecords int) error {
	args := m.Called(runID, endTime, totalRecords)
	return args.Error(0)
}

// RecordRecommendation implements the RunStore interface.
func (m *MockRunStore) RecordRecommendation(runID int64, rank int, rec schema.Recommendation) error {
	args := m.Called(runID, rank, rec)
	return args.Error(0)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.RunRecord)
	return records, args.Error(1)
}

// ListRecommendations implements the RunStore interface.
func (m *MockRunStore) ListRecommendations() ([]schema.RunRecommendationRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.RunRecommendationRecord)
	return records, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStoreStatus), args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
