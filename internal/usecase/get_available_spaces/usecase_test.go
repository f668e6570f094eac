package get_available_spaces

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	// occupied держит занятость по ID пространства
	occupied map[int64][]*domain.Reservation
}

func (f *fakeReservationRepo) GetBySpaceInRange(_ context.Context, spaceID int64, _, _ time.Time, _ []domain.ReservationStatus, _ *int64) ([]*domain.Reservation, error) {
	return f.occupied[spaceID], nil
}

type fakeSpaceRepo struct {
	spaces []*domain.Space
	filter domain.SpaceFilter
}

func (f *fakeSpaceRepo) List(_ context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	f.filter = filter
	return f.spaces, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

func testSpaces() []*domain.Space {
	return []*domain.Space{
		{ID: 1, Name: "Sala A101", Kind: domain.SpaceRoom, Capacity: 30, Active: true},
		{ID: 2, Name: "Sala B202", Kind: domain.SpaceRoom, Capacity: 20, Active: true},
		{ID: 3, Name: "Cancha Futbol 1", Kind: domain.SpaceCourt, Capacity: 22, Active: true},
	}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	start, err := time.Parse(domain.DateTimeFormat, "2026-03-12 10:00:00")
	require.NoError(t, err)
	return &Request{Start: start, End: start.Add(2 * time.Hour)}
}

// --- Тесты ---

// TestExecute_FiltersOccupiedSpaces проверяет исключение занятых пространств
func TestExecute_FiltersOccupiedSpaces(t *testing.T) {
	occupied := map[int64][]*domain.Reservation{
		2: {{ID: 7, SpaceID: 2, Status: domain.StatusApproved}},
	}
	uc := NewUseCase(&fakeReservationRepo{occupied: occupied}, &fakeSpaceRepo{spaces: testSpaces()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	require.Len(t, resp.Spaces, 2)
	assert.Equal(t, int64(1), resp.Spaces[0].ID)
	assert.Equal(t, int64(3), resp.Spaces[1].ID)
}

// TestExecute_AllFree проверяет, что при отсутствии занятости возвращаются все
func TestExecute_AllFree(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{spaces: testSpaces()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Len(t, resp.Spaces, 3)
}

// TestExecute_KindFilter проверяет передачу фильтра по типу пространства
func TestExecute_KindFilter(t *testing.T) {
	spaceRepo := &fakeSpaceRepo{spaces: nil}
	uc := NewUseCase(&fakeReservationRepo{}, spaceRepo, noopLogger{})

	req := validRequest(t)
	req.Kind = ptr.Ptr("cancha")
	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, spaceRepo.filter.Kind)
	assert.Equal(t, domain.SpaceCourt, *spaceRepo.filter.Kind)
}

// TestExecute_InvalidKind проверяет отказ для неизвестного типа
func TestExecute_InvalidKind(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{}, noopLogger{})

	req := validRequest(t)
	req.Kind = ptr.Ptr("piscina")
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestExecute_InvalidTimeRange проверяет отказ при start >= end
func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{}, noopLogger{})

	req := validRequest(t)
	req.Start, req.End = req.End, req.Start
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
