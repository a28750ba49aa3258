package enumerate_slots

import (
	"context"
	"errors"
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

func bay(id int64, number string) *domain.Bay {
	return &domain.Bay{
		ID:             id,
		BayNumber:      number,
		MaxVehicleSize: domain.SizeStandard,
		Status:         domain.ResourceStatusActive,
	}
}

func bayRef(id int64) domain.ResourceRef {
	return domain.ResourceRef{Type: domain.ResourceTypeWashBay, ID: id}
}

func TestEnumerateSlots_AllFree(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, 30, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(1 * time.Hour)

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{bay(1, "01"), bay(2, "02")}, nil)
	repo.On("ListActiveByResource", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	// Шаги 10:00, 10:30, 11:00 — границы включительно
	require.Len(t, resp.Slots, 3)
	for i, slot := range resp.Slots {
		assert.Equal(t, start.Add(time.Duration(i)*30*time.Minute), slot.StartTime)
		assert.Equal(t, slot.StartTime.Add(30*time.Minute), slot.EndTime)
		assert.Equal(t, 2, slot.AvailableCapacity)
		assert.Equal(t, 30, slot.DurationMinutes)
	}

	// Одна выборка бронирований на бокс на весь диапазон
	repo.AssertNumberOfCalls(t, "ListActiveByResource", 2)
}

func TestEnumerateSlots_ZeroCapacityOmitted(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, 30, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(1 * time.Hour)

	// Единственный бокс занят с 10:00 до 11:00
	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{bay(1, "01")}, nil)
	repo.On("ListActiveByResource", mock.Anything, bayRef(1), mock.Anything).Return([]*domain.Booking{
		{
			ID:              10,
			ResourceType:    domain.ResourceTypeWashBay,
			ResourceID:      1,
			ScheduledAt:     start,
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	// 10:00 и 10:30 пересекаются с бронированием и молча опускаются,
	// слот 11:00 начинается ровно в момент окончания и проходит
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, start.Add(1*time.Hour), resp.Slots[0].StartTime)
	assert.Equal(t, 1, resp.Slots[0].AvailableCapacity)
}

func TestEnumerateSlots_Boundedness(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, 30, noopLogger{})

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	interval := 45

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{bay(1, "01")}, nil)
	repo.On("ListActiveByResource", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:           start,
		EndDate:             end,
		DurationMinutes:     30,
		SlotIntervalMinutes: interval,
	})

	require.NoError(t, err)
	// Не более floor((end-start)/interval)+1 слотов
	maxSlots := int(end.Sub(start).Minutes())/interval + 1
	assert.LessOrEqual(t, len(resp.Slots), maxSlots)
	for _, slot := range resp.Slots {
		assert.Positive(t, slot.AvailableCapacity)
	}
}

func TestEnumerateSlots_DefaultInterval(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, 15, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{bay(1, "01")}, nil)
	repo.On("ListActiveByResource", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	// SlotIntervalMinutes == 0 — берется шаг из конфигурации (15 минут)
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
}

func TestEnumerateSlots_InvalidDateRange(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, 30, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		StartDate:       start,
		EndDate:         start.Add(-time.Hour),
		DurationMinutes: 30,
	})

	assert.True(t, errors.Is(err, ErrInvalidDateRange))
}

func TestEnumerateSlots_SingleStepRange(t *testing.T) {
	catalog := new(MockCatalogService)
	repo := new(MockBookingRepository)
	uc := NewUseCase(catalog, repo, 24, 30, noopLogger{})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	catalog.On("ListActiveBays", mock.Anything).Return([]*domain.Bay{bay(1, "01")}, nil)
	repo.On("ListActiveByResource", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	// start == end: ровно один шаг
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate:       start,
		EndDate:         start,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, start, resp.Slots[0].StartTime)
}
