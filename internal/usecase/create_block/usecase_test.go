package create_block

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	overlapping []*domain.Reservation
	created     *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	rsv.ID = 55
	f.created = rsv
	return rsv, nil
}

func (f *fakeReservationRepo) GetBySpaceInRange(_ context.Context, _ int64, _, _ time.Time, _ []domain.ReservationStatus, _ *int64) ([]*domain.Reservation, error) {
	return f.overlapping, nil
}

type fakeSpaceRepo struct {
	space *domain.Space
	err   error
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.Space, error) {
	return f.space, f.err
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, nil
}

type fakeAudit struct {
	records int
}

func (f *fakeAudit) Record(_ context.Context, _, _ string, _, _ int64, _, _ interface{}) {
	f.records++
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

func validRequest(t *testing.T) *Request {
	t.Helper()
	start, err := time.Parse(domain.DateTimeFormat, "2026-03-12 08:00:00")
	require.NoError(t, err)
	return &Request{
		ActorID: 1,
		SpaceID: 5,
		Start:   start,
		End:     start.Add(4 * time.Hour),
		Reason:  ptr.Ptr("mantencion programada"),
	}
}

func newTestUseCase(rsvRepo *fakeReservationRepo, spaceRepo *fakeSpaceRepo, role domain.UserRole, audit *fakeAudit) *UseCase {
	return NewUseCase(
		rsvRepo,
		spaceRepo,
		&fakeUserRepo{user: &domain.User{ID: 1, Role: role, Active: true}},
		audit,
		&fakeTxManager{},
		noopLogger{},
	)
}

// --- Тесты ---

// TestExecute_Success проверяет создание блокировки администратором
func TestExecute_Success(t *testing.T) {
	rsvRepo := &fakeReservationRepo{}
	audit := &fakeAudit{}
	uc := newTestUseCase(rsvRepo, &fakeSpaceRepo{space: &domain.Space{ID: 5, Active: true}}, domain.RoleAdmin, audit)

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.ID)
	assert.Equal(t, string(domain.StatusBlock), resp.Status)
	assert.Equal(t, int64(1), resp.CreatedBy)
	assert.Equal(t, domain.KindBlock, rsvRepo.created.Kind)
	assert.Equal(t, 1, audit.records)
}

// TestExecute_InactiveSpaceAllowed проверяет, что блокировать можно
// и деактивированное пространство
func TestExecute_InactiveSpaceAllowed(t *testing.T) {
	inactive := &domain.Space{ID: 5, Active: false}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: inactive}, domain.RoleAdmin, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

// TestExecute_SlotNotAvailable проверяет отказ при пересечении с занятым интервалом
func TestExecute_SlotNotAvailable(t *testing.T) {
	occupied := &domain.Reservation{ID: 9, Status: domain.StatusApproved}
	rsvRepo := &fakeReservationRepo{overlapping: []*domain.Reservation{occupied}}
	uc := newTestUseCase(rsvRepo, &fakeSpaceRepo{space: &domain.Space{ID: 5, Active: true}}, domain.RoleAdmin, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, rsvRepo.created)
}

// TestExecute_AccessDenied проверяет отказ для не-администраторов
func TestExecute_AccessDenied(t *testing.T) {
	tests := []struct {
		name string
		role domain.UserRole
	}{
		{name: "student", role: domain.RoleStudent},
		{name: "staff", role: domain.RoleStaff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: &domain.Space{ID: 5, Active: true}}, tt.role, &fakeAudit{})

			_, err := uc.Execute(context.Background(), validRequest(t))
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

// TestExecute_InvalidInput проверяет валидацию запроса
func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: &domain.Space{ID: 5, Active: true}}, domain.RoleAdmin, &fakeAudit{})

	req := validRequest(t)
	req.Start, req.End = req.End, req.Start
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(t)
	longReason := strings.Repeat("x", domain.MaxReasonLength+1)
	req.Reason = &longReason
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
