package create_reservation

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
	overlapping []*domain.Reservation
	activeCount int
	created     *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	rsv.ID = 42
	f.created = rsv
	return rsv, nil
}

func (f *fakeReservationRepo) GetBySpaceInRange(_ context.Context, _ int64, _, _ time.Time, _ []domain.ReservationStatus, _ *int64) ([]*domain.Reservation, error) {
	return f.overlapping, nil
}

func (f *fakeReservationRepo) CountActiveByUser(_ context.Context, _ int64) (int, error) {
	return f.activeCount, nil
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
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

type fakePolicyRepo struct {
	policy *domain.ReservationPolicy
}

func (f *fakePolicyRepo) Get(_ context.Context) (*domain.ReservationPolicy, error) {
	return f.policy, nil
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

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

func testPolicy() *domain.ReservationPolicy {
	return &domain.ReservationPolicy{
		ID:                    1,
		AdvanceWindowDays:     7,
		MaxActiveReservations: 1,
		MaxDurationHours:      4,
		OpeningTime:           "08:00",
		ClosingTime:           "22:00",
	}
}

func activeStudent() *domain.User {
	return &domain.User{ID: 10, Role: domain.RoleStudent, Active: true}
}

func activeSpace() *domain.Space {
	return &domain.Space{ID: 5, Name: "Sala A101", Kind: domain.SpaceRoom, Active: true}
}

func newTestUseCase(rsvRepo *fakeReservationRepo, spaceRepo *fakeSpaceRepo, userRepo *fakeUserRepo, audit *fakeAudit, now time.Time) *UseCase {
	uc := NewUseCase(
		rsvRepo,
		spaceRepo,
		userRepo,
		&fakePolicyRepo{policy: testPolicy()},
		audit,
		&fakeTxManager{},
		noopLogger{},
	)
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func parseDT(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return parsed
}

// --- Тесты ---

// TestExecute_Success проверяет успешное создание заявки в статусе pendiente
func TestExecute_Success(t *testing.T) {
	now := parseDT(t, "2026-03-10 12:00:00")
	rsvRepo := &fakeReservationRepo{}
	audit := &fakeAudit{}
	uc := newTestUseCase(rsvRepo, &fakeSpaceRepo{space: activeSpace()}, &fakeUserRepo{user: activeStudent()}, audit, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  10,
		SpaceID: 5,
		Start:   parseDT(t, "2026-03-12 10:00:00"),
		End:     parseDT(t, "2026-03-12 12:00:00"),
		Reason:  ptr.Ptr("clase de repaso"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.KindNormal, rsvRepo.created.Kind)
	assert.Equal(t, now, resp.RequestedAt)
	assert.Equal(t, 1, audit.records)
}

// TestExecute_PolicyValidation проверяет отклонение заявок по политике
func TestExecute_PolicyValidation(t *testing.T) {
	now := "2026-03-10 12:00:00"

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{
			name:    "start in the past",
			start:   "2026-03-10 09:00:00",
			end:     "2026-03-10 10:00:00",
			wantErr: ErrStartInPast,
		},
		{
			name:    "beyond advance window",
			start:   "2026-03-20 10:00:00",
			end:     "2026-03-20 12:00:00",
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "duration exceeds limit",
			start:   "2026-03-12 10:00:00",
			end:     "2026-03-12 15:00:00",
			wantErr: ErrDurationTooLong,
		},
		{
			name:    "before opening hours",
			start:   "2026-03-12 07:00:00",
			end:     "2026-03-12 09:00:00",
			wantErr: ErrOutsideOperatingHours,
		},
		{
			name:    "after closing hours",
			start:   "2026-03-12 21:00:00",
			end:     "2026-03-12 23:00:00",
			wantErr: ErrOutsideOperatingHours,
		},
		{
			name:    "crosses midnight",
			start:   "2026-03-12 21:00:00",
			end:     "2026-03-13 01:00:00",
			wantErr: ErrOutsideOperatingHours,
		},
		{
			name:    "exact operating window allowed",
			start:   "2026-03-12 08:00:00",
			end:     "2026-03-12 12:00:00",
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()},
				&fakeUserRepo{user: activeStudent()}, &fakeAudit{}, parseDT(t, now))

			_, err := uc.Execute(context.Background(), &Request{
				UserID:  10,
				SpaceID: 5,
				Start:   parseDT(t, tt.start),
				End:     parseDT(t, tt.end),
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestExecute_InvalidInput проверяет валидацию структуры запроса
func TestExecute_InvalidInput(t *testing.T) {
	now := parseDT(t, "2026-03-10 12:00:00")

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "start after end",
			req: &Request{
				UserID:  10,
				SpaceID: 5,
				Start:   parseDT(t, "2026-03-12 12:00:00"),
				End:     parseDT(t, "2026-03-12 10:00:00"),
			},
		},
		{
			name: "zero space id",
			req: &Request{
				UserID: 10,
				Start:  parseDT(t, "2026-03-12 10:00:00"),
				End:    parseDT(t, "2026-03-12 12:00:00"),
			},
		},
		{
			name: "recurrence pattern without recurring flag",
			req: &Request{
				UserID:            10,
				SpaceID:           5,
				Start:             parseDT(t, "2026-03-12 10:00:00"),
				End:               parseDT(t, "2026-03-12 12:00:00"),
				RecurrencePattern: ptr.Ptr("semanal"),
			},
		},
		{
			name: "recurring without pattern",
			req: &Request{
				UserID:    10,
				SpaceID:   5,
				Start:     parseDT(t, "2026-03-12 10:00:00"),
				End:       parseDT(t, "2026-03-12 12:00:00"),
				Recurring: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()},
				&fakeUserRepo{user: activeStudent()}, &fakeAudit{}, now)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// TestExecute_UserLimit проверяет лимит активных заявок пользователя
func TestExecute_UserLimit(t *testing.T) {
	now := parseDT(t, "2026-03-10 12:00:00")
	uc := newTestUseCase(&fakeReservationRepo{activeCount: 1}, &fakeSpaceRepo{space: activeSpace()},
		&fakeUserRepo{user: activeStudent()}, &fakeAudit{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  10,
		SpaceID: 5,
		Start:   parseDT(t, "2026-03-12 10:00:00"),
		End:     parseDT(t, "2026-03-12 12:00:00"),
	})

	assert.ErrorIs(t, err, ErrTooManyActiveReservations)
}

// TestExecute_SlotNotAvailable проверяет отказ при пересечении с занятым интервалом
func TestExecute_SlotNotAvailable(t *testing.T) {
	now := parseDT(t, "2026-03-10 12:00:00")
	occupied := &domain.Reservation{ID: 7, Status: domain.StatusApproved}
	uc := newTestUseCase(&fakeReservationRepo{overlapping: []*domain.Reservation{occupied}},
		&fakeSpaceRepo{space: activeSpace()}, &fakeUserRepo{user: activeStudent()}, &fakeAudit{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  10,
		SpaceID: 5,
		Start:   parseDT(t, "2026-03-12 10:00:00"),
		End:     parseDT(t, "2026-03-12 12:00:00"),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

// TestExecute_InactiveSpace проверяет отказ для деактивированного пространства
func TestExecute_InactiveSpace(t *testing.T) {
	now := parseDT(t, "2026-03-10 12:00:00")
	inactive := activeSpace()
	inactive.Active = false
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: inactive},
		&fakeUserRepo{user: activeStudent()}, &fakeAudit{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  10,
		SpaceID: 5,
		Start:   parseDT(t, "2026-03-12 10:00:00"),
		End:     parseDT(t, "2026-03-12 12:00:00"),
	})

	assert.ErrorIs(t, err, ErrSpaceInactive)
}

// TestExecute_InactiveUser проверяет отказ для заблокированного пользователя
func TestExecute_InactiveUser(t *testing.T) {
	now := parseDT(t, "2026-03-10 12:00:00")
	blocked := activeStudent()
	blocked.Active = false
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()},
		&fakeUserRepo{user: blocked}, &fakeAudit{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  10,
		SpaceID: 5,
		Start:   parseDT(t, "2026-03-12 10:00:00"),
		End:     parseDT(t, "2026-03-12 12:00:00"),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
