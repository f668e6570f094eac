package approve_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/reservation"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
	overlapping []*domain.Reservation
	approved    bool
	excludeID   *int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copy := *f.reservation
	return &copy, nil
}

func (f *fakeReservationRepo) GetBySpaceInRange(_ context.Context, _ int64, _, _ time.Time, _ []domain.ReservationStatus, excludeID *int64) ([]*domain.Reservation, error) {
	f.excludeID = excludeID
	return f.overlapping, nil
}

func (f *fakeReservationRepo) Approve(_ context.Context, _ int64, _ int64, _ time.Time) error {
	f.approved = true
	return nil
}

type fakeSpaceRepo struct {
	space *domain.Space
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.Space, error) {
	return f.space, nil
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

type fakeNotifier struct {
	approvals int
}

func (f *fakeNotifier) NotifyApproval(_ context.Context, _ *domain.Reservation, _ string) {
	f.approvals++
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

func admin() *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleAdmin, Active: true}
}

func pendingReservation(t *testing.T) *domain.Reservation {
	t.Helper()
	start, err := time.Parse(domain.DateTimeFormat, "2026-03-12 10:00:00")
	require.NoError(t, err)
	return &domain.Reservation{
		ID:      42,
		UserID:  10,
		SpaceID: 5,
		Start:   start,
		End:     start.Add(2 * time.Hour),
		Status:  domain.StatusPending,
		Kind:    domain.KindNormal,
	}
}

func newTestUseCase(rsvRepo *fakeReservationRepo, userRepo *fakeUserRepo, notifier *fakeNotifier, audit *fakeAudit) *UseCase {
	return NewUseCase(
		rsvRepo,
		&fakeSpaceRepo{space: &domain.Space{ID: 5, Name: "Sala A101"}},
		userRepo,
		notifier,
		audit,
		&fakeTxManager{},
		noopLogger{},
	)
}

// --- Тесты ---

// TestExecute_Success проверяет одобрение ожидающей заявки
func TestExecute_Success(t *testing.T) {
	rsvRepo := &fakeReservationRepo{reservation: pendingReservation(t)}
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}
	uc := newTestUseCase(rsvRepo, &fakeUserRepo{user: admin()}, notifier, audit)

	resp, err := uc.Execute(context.Background(), &Request{ActorID: 1, ReservationID: 42})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, int64(1), resp.ApprovedBy)
	assert.True(t, rsvRepo.approved)
	// Сама заявка исключается из проверки пересечений
	require.NotNil(t, rsvRepo.excludeID)
	assert.Equal(t, int64(42), *rsvRepo.excludeID)
	assert.Equal(t, 1, audit.records)
	assert.Equal(t, 1, notifier.approvals)
}

// TestExecute_SlotConflict проверяет, что при конфликте заявка остается pendiente
func TestExecute_SlotConflict(t *testing.T) {
	conflicting := &domain.Reservation{ID: 99, Status: domain.StatusApproved}
	rsvRepo := &fakeReservationRepo{
		reservation: pendingReservation(t),
		overlapping: []*domain.Reservation{conflicting},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(rsvRepo, &fakeUserRepo{user: admin()}, notifier, &fakeAudit{})

	_, err := uc.Execute(context.Background(), &Request{ActorID: 1, ReservationID: 42})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.False(t, rsvRepo.approved)
	assert.Zero(t, notifier.approvals)
}

// TestExecute_AlreadyDecided проверяет отказ по уже решенной заявке
func TestExecute_AlreadyDecided(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ReservationStatus
	}{
		{name: "already approved", status: domain.StatusApproved},
		{name: "already rejected", status: domain.StatusRejected},
		{name: "cancelled", status: domain.StatusCancelled},
		{name: "block entry", status: domain.StatusBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsv := pendingReservation(t)
			rsv.Status = tt.status
			uc := newTestUseCase(&fakeReservationRepo{reservation: rsv},
				&fakeUserRepo{user: admin()}, &fakeNotifier{}, &fakeAudit{})

			_, err := uc.Execute(context.Background(), &Request{ActorID: 1, ReservationID: 42})
			assert.ErrorIs(t, err, ErrAlreadyDecided)
		})
	}
}

// TestExecute_AccessDenied проверяет, что не-администратор не может одобрять
func TestExecute_AccessDenied(t *testing.T) {
	student := &domain.User{ID: 2, Role: domain.RoleStudent, Active: true}
	uc := newTestUseCase(&fakeReservationRepo{reservation: pendingReservation(t)},
		&fakeUserRepo{user: student}, &fakeNotifier{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), &Request{ActorID: 2, ReservationID: 42})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// TestExecute_ReservationNotFound проверяет отказ по несуществующей заявке
func TestExecute_ReservationNotFound(t *testing.T) {
	rsvRepo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	uc := newTestUseCase(rsvRepo, &fakeUserRepo{user: admin()}, &fakeNotifier{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), &Request{ActorID: 1, ReservationID: 404})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
