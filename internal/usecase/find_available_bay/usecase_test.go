package find_available_bay

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

func (m *MockCatalogService) ListCompatibleBays(ctx context.Context, size domain.VehicleSize) ([]*domain.Bay, error) {
	args := m.Called(ctx, size)
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

func confirmedBooking(bayID int64, start time.Time, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              100 + bayID,
		ResourceType:    domain.ResourceTypeWashBay,
		ResourceID:      bayID,
		ScheduledAt:     start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestFindAvailableBay_FirstFit(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// Бокс 1 занят, бокс 2 свободен, бокс 3 не должен даже проверяться
	catalog.On("ListCompatibleBays", mock.Anything, domain.SizeStandard).Return([]*domain.Bay{
		bay(1, "01", domain.SizeStandard),
		bay(2, "02", domain.SizeLarge),
		bay(3, "03", domain.SizeOversized),
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(1), mock.Anything).Return([]*domain.Booking{
		confirmedBooking(1, start, 60),
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(2), mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		ScheduledAt:     start,
		DurationMinutes: 60,
		VehicleSize:     domain.SizeStandard,
	})

	require.NoError(t, err)
	require.True(t, resp.Found())
	assert.Equal(t, int64(2), *resp.BayID)
	assert.Equal(t, "02", *resp.BayNumber)
	repo.AssertNotCalled(t, "ListActiveByResource", mock.Anything, bayRef(3), mock.Anything)
}

func TestFindAvailableBay_LowestNumberWins(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// Все боксы свободны — выбирается первый в порядке каталога
	catalog.On("ListCompatibleBays", mock.Anything, domain.SizeCompact).Return([]*domain.Bay{
		bay(1, "01", domain.SizeStandard),
		bay(2, "02", domain.SizeLarge),
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(1), mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		ScheduledAt:     start,
		DurationMinutes: 30,
		VehicleSize:     domain.SizeCompact,
	})

	require.NoError(t, err)
	require.True(t, resp.Found())
	assert.Equal(t, int64(1), *resp.BayID)
}

func TestFindAvailableBay_IncompatibleFreeBayNotUsed(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// B1(standard) свободен, но несовместим с large — каталог его не возвращает.
	// B2(large) совместим, но занят. Итог: None, хотя свободный бокс есть
	catalog.On("ListCompatibleBays", mock.Anything, domain.SizeLarge).Return([]*domain.Bay{
		bay(2, "02", domain.SizeLarge),
	}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(2), mock.Anything).Return([]*domain.Booking{
		confirmedBooking(2, start, 60),
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		ScheduledAt:     start,
		DurationMinutes: 60,
		VehicleSize:     domain.SizeLarge,
	})

	require.NoError(t, err)
	assert.False(t, resp.Found())
	assert.Nil(t, resp.BayID)
	assert.Nil(t, resp.BayNumber)
}

func TestFindAvailableBay_EmptyCandidateSet(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, noopLogger{})

	catalog.On("ListCompatibleBays", mock.Anything, domain.SizeOversized).Return([]*domain.Bay{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		ScheduledAt:     time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		VehicleSize:     domain.SizeOversized,
	})

	// Пустой набор кандидатов — нормальный результат, не ошибка
	require.NoError(t, err)
	assert.False(t, resp.Found())
}
