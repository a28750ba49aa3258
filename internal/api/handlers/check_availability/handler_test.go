package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CapacityService/internal/usecase/check_availability"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkAvailability.Response), args.Error(1)
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return ts
}

func mustRef(t *testing.T) domain.ResourceRef {
	t.Helper()
	return domain.ResourceRef{Type: domain.ResourceTypeWashBay, ID: 1}
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/resources/{resourceType}/{resourceId}/availability", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Available(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, noopLogger{})

	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkAvailability.Request) bool {
		return req.Resource.ID == 1 && req.DurationMinutes == 60
	})).Return(&checkAvailability.Response{
		Resource:        mustRef(t),
		ScheduledAt:     mustParse(t, "2026-03-10T10:00:00Z"),
		DurationMinutes: 60,
		Available:       true,
	}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/resources/wash_bay/1/availability?scheduled_at=2026-03-10T10:00:00Z&duration_minutes=60", nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "wash_bay", body.ResourceType)
	assert.Equal(t, int64(1), body.ResourceID)
	assert.True(t, body.Available)
}

func TestHandle_BadResourceType(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/resources/garage/1/availability?scheduled_at=2026-03-10T10:00:00Z&duration_minutes=60", nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_MissingScheduledAt(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/resources/wash_bay/1/availability?duration_minutes=60", nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ResourceNotFound(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, noopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, checkAvailability.ErrResourceNotFound)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/resources/wash_bay/999/availability?scheduled_at=2026-03-10T10:00:00Z&duration_minutes=60", nil)
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
