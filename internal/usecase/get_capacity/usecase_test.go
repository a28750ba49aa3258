package get_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListActiveBays(ctx context.Context) ([]*domain.Bay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Bay), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListActiveByResource(ctx context.Context, ref domain.ResourceRef, window domain.TimeRange) ([]*domain.Booking, error) {
	args := m.Called(ctx, ref, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func bay(id int64, number string, maxSize domain.VehicleSize) *domain.Bay {
	return &domain.Bay{
		ID:             id,
		BayNumber:      number,
		MaxVehicleSize: maxSize,
		Status:         domain.ResourceStatusActive,
	}
}

func bayRef(id int64) domain.ResourceRef {
	return domain.ResourceRef{Type: domain.ResourceTypeWashBay, ID: id}
}

func TestGetCapacity_OneOfTwoBooked(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{
		bay(1, "01", domain.SizeStandard),
		bay(2, "02", domain.SizeLarge),
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(1), mock.Anything).Return([]*domain.Booking{
		{
			ID:              10,
			ResourceType:    domain.ResourceTypeWashBay,
			ResourceID:      1,
			ScheduledAt:     at,
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(2), mock.Anything).Return([]*domain.Booking{}, nil)

	snapshot, err := uc.Execute(context.Background(), &Request{ScheduledAt: at, DurationMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.TotalBays)
	assert.Equal(t, 1, snapshot.AvailableBays)
	assert.Equal(t, 1, snapshot.BookedBays)
	assert.Equal(t, 50.0, snapshot.UtilizationPercent)

	require.Len(t, snapshot.BayDetails, 2)
	assert.False(t, snapshot.BayDetails[0].IsAvailable)
	assert.True(t, snapshot.BayDetails[1].IsAvailable)
	assert.Equal(t, "01", snapshot.BayDetails[0].BayNumber)
}

func TestGetCapacity_EmptyCatalog(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{}, nil)

	snapshot, err := uc.Execute(context.Background(), &Request{
		ScheduledAt:     time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalBays)
	assert.Equal(t, 0.0, snapshot.UtilizationPercent)
	assert.Empty(t, snapshot.BayDetails)
}

func TestGetCapacity_AvailableCapacity(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{
		bay(1, "01", domain.SizeStandard),
		bay(2, "02", domain.SizeLarge),
		bay(3, "03", domain.SizeOversized),
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(1), mock.Anything).Return([]*domain.Booking{
		{
			ID:              10,
			ResourceType:    domain.ResourceTypeWashBay,
			ResourceID:      1,
			ScheduledAt:     at,
			DurationMinutes: 60,
			Status:          domain.StatusInProgress,
		},
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(2), mock.Anything).Return([]*domain.Booking{}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(3), mock.Anything).Return([]*domain.Booking{}, nil)

	capacity, err := uc.AvailableCapacity(context.Background(), at, 60)

	require.NoError(t, err)
	assert.Equal(t, 2, capacity)
}
