package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/UDP-ReservationService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	byID map[int64]*domain.Reservation

	rejected  []int64
	cancelled []int64
	deleted   []int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	rsv, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *rsv
	return &cp, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, rsv := range f.byID {
		if rsv.UserID != userID {
			continue
		}
		if status != nil && rsv.Status != *status {
			continue
		}
		out = append(out, rsv)
	}
	return out, nil
}

func (f *fakeReservationRepo) GetBySpaceInRange(_ context.Context, spaceID int64, start, end time.Time, statuses []domain.ReservationStatus, _ *int64) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, rsv := range f.byID {
		if rsv.SpaceID != spaceID || !domain.Overlaps(rsv.Start, rsv.End, start, end) {
			continue
		}
		for _, st := range statuses {
			if rsv.Status == st {
				out = append(out, rsv)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Reject(_ context.Context, id int64, _ int64, _ string, _ time.Time) error {
	f.rejected = append(f.rejected, id)
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, _ *string, _ time.Time) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeReservationRepo) DeleteBlock(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSpaceRepo struct{}

func (fakeSpaceRepo) GetByID(_ context.Context, id int64) (*domain.Space, error) {
	return &domain.Space{ID: id, Name: "Sala A101", Kind: domain.SpaceRoom, Active: true}, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type fakeNotifier struct {
	rejections    int
	cancellations int
}

func (f *fakeNotifier) NotifyRejection(_ context.Context, _ *domain.Reservation, _, _ string) {
	f.rejections++
}

func (f *fakeNotifier) NotifyCancellation(_ context.Context, _ *domain.Reservation, _, _ string) {
	f.cancellations++
}

type fakeAudit struct {
	records []string
}

func (f *fakeAudit) Record(_ context.Context, _, action string, _, _ int64, _, _ interface{}) {
	f.records = append(f.records, action)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

const (
	studentID = int64(1)
	adminID   = int64(2)
	otherID   = int64(3)
)

func testUsers() map[int64]*domain.User {
	return map[int64]*domain.User{
		studentID: {ID: studentID, Role: domain.RoleStudent, Active: true},
		adminID:   {ID: adminID, Role: domain.RoleAdmin, Active: true},
		otherID:   {ID: otherID, Role: domain.RoleStudent, Active: true},
	}
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return ts
}

func testReservation(t *testing.T, id int64, status domain.ReservationStatus, kind domain.ReservationKind) *domain.Reservation {
	t.Helper()
	return &domain.Reservation{
		ID:          id,
		UserID:      studentID,
		SpaceID:     10,
		Start:       mustParse(t, "2026-03-12 10:00:00"),
		End:         mustParse(t, "2026-03-12 12:00:00"),
		Status:      status,
		Kind:        kind,
		RequestedAt: mustParse(t, "2026-03-01 09:00:00"),
	}
}

type env struct {
	svc      *Service
	rsvRepo  *fakeReservationRepo
	notifier *fakeNotifier
	audit    *fakeAudit
}

func newTestService(t *testing.T, reservations ...*domain.Reservation) *env {
	t.Helper()
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for _, rsv := range reservations {
		byID[rsv.ID] = rsv
	}
	rsvRepo := &fakeReservationRepo{byID: byID}
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}

	svc := NewService(rsvRepo, fakeSpaceRepo{}, &fakeUserRepo{users: testUsers()}, notifier, audit, noopLogger{})
	svc.timeProvider = &fakeClock{now: mustParse(t, "2026-03-10 12:00:00")}

	return &env{svc: svc, rsvRepo: rsvRepo, notifier: notifier, audit: audit}
}

// --- Тесты ---

// TestGetByID_AccessControl проверяет видимость резервации по владельцу и роли
func TestGetByID_AccessControl(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		wantErr error
	}{
		{name: "владелец видит свою резервацию", actorID: studentID},
		{name: "администратор видит любую", actorID: adminID},
		{name: "чужой пользователь получает отказ", actorID: otherID, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestService(t, testReservation(t, 42, domain.StatusPending, domain.KindNormal))

			resp, err := e.svc.GetByID(context.Background(), 42, tt.actorID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), resp.ID)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	e := newTestService(t)

	_, err := e.svc.GetByID(context.Background(), 99, adminID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

// TestReject_Success проверяет отклонение заявки с уведомлением
func TestReject_Success(t *testing.T) {
	e := newTestService(t, testReservation(t, 42, domain.StatusPending, domain.KindNormal))

	resp, err := e.svc.Reject(context.Background(), &models.RejectReservationRequest{
		ActorID:       adminID,
		ReservationID: 42,
		Reason:        "el espacio esta en mantencion",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, []int64{42}, e.rsvRepo.rejected)
	assert.Equal(t, []string{domain.AuditActionReject}, e.audit.records)
	assert.Equal(t, 1, e.notifier.rejections)
}

// TestReject_WithoutReason проверяет отклонение без указания причины
func TestReject_WithoutReason(t *testing.T) {
	e := newTestService(t, testReservation(t, 42, domain.StatusPending, domain.KindNormal))

	resp, err := e.svc.Reject(context.Background(), &models.RejectReservationRequest{
		ActorID:       adminID,
		ReservationID: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	assert.Nil(t, resp.RejectionReason)
	assert.Equal(t, 1, e.notifier.rejections)
}

// TestReject_Validation проверяет причину, роль и статус заявки
func TestReject_Validation(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		status  domain.ReservationStatus
		reason  string
		wantErr error
	}{
		{name: "слишком длинная причина", actorID: adminID, status: domain.StatusPending, reason: strings.Repeat("a", domain.MaxReasonLength+1), wantErr: ErrInvalidInput},
		{name: "студент не может отклонять", actorID: studentID, status: domain.StatusPending, reason: "no", wantErr: ErrAccessDenied},
		{name: "уже одобрена", actorID: adminID, status: domain.StatusApproved, reason: "no", wantErr: ErrAlreadyDecided},
		{name: "уже отменена", actorID: adminID, status: domain.StatusCancelled, reason: "no", wantErr: ErrAlreadyDecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestService(t, testReservation(t, 42, tt.status, domain.KindNormal))

			_, err := e.svc.Reject(context.Background(), &models.RejectReservationRequest{
				ActorID:       tt.actorID,
				ReservationID: 42,
				Reason:        tt.reason,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.rsvRepo.rejected)
		})
	}
}

// TestCancel_ByOwner проверяет отмену владельцем без уведомления
func TestCancel_ByOwner(t *testing.T) {
	e := newTestService(t, testReservation(t, 42, domain.StatusApproved, domain.KindNormal))

	resp, err := e.svc.Cancel(context.Background(), &models.CancelReservationRequest{
		ActorID:       studentID,
		ReservationID: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, []int64{42}, e.rsvRepo.cancelled)
	assert.Equal(t, 0, e.notifier.cancellations)
}

// TestCancel_ByAdminNotifiesOwner проверяет уведомление при отмене администратором
func TestCancel_ByAdminNotifiesOwner(t *testing.T) {
	e := newTestService(t, testReservation(t, 42, domain.StatusPending, domain.KindNormal))

	_, err := e.svc.Cancel(context.Background(), &models.CancelReservationRequest{
		ActorID:       adminID,
		ReservationID: 42,
		Reason:        ptr.Ptr("evento institucional"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, e.notifier.cancellations)
}

// TestCancel_Validation проверяет невозможные отмены
func TestCancel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		status  domain.ReservationStatus
		kind    domain.ReservationKind
		wantErr error
	}{
		{name: "чужая резервация", actorID: otherID, status: domain.StatusPending, kind: domain.KindNormal, wantErr: ErrAccessDenied},
		{name: "уже отклоненная", actorID: studentID, status: domain.StatusRejected, kind: domain.KindNormal, wantErr: ErrCannotCancel},
		{name: "уже отмененная", actorID: studentID, status: domain.StatusCancelled, kind: domain.KindNormal, wantErr: ErrCannotCancel},
		{name: "блокировка не отменяется", actorID: adminID, status: domain.StatusBlock, kind: domain.KindBlock, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestService(t, testReservation(t, 42, tt.status, tt.kind))

			_, err := e.svc.Cancel(context.Background(), &models.CancelReservationRequest{
				ActorID:       tt.actorID,
				ReservationID: 42,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.rsvRepo.cancelled)
		})
	}
}

// TestDeleteBlock проверяет удаление блокировки и защиту обычных резерваций
func TestDeleteBlock(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		block := testReservation(t, 50, domain.StatusBlock, domain.KindBlock)
		e := newTestService(t, block)

		err := e.svc.DeleteBlock(context.Background(), adminID, 50)

		require.NoError(t, err)
		assert.Equal(t, []int64{50}, e.rsvRepo.deleted)
		assert.Equal(t, []string{domain.AuditActionDelete}, e.audit.records)
	})

	t.Run("обычная резервация не блокировка", func(t *testing.T) {
		e := newTestService(t, testReservation(t, 42, domain.StatusApproved, domain.KindNormal))

		err := e.svc.DeleteBlock(context.Background(), adminID, 42)
		assert.ErrorIs(t, err, ErrNotABlock)
		assert.Empty(t, e.rsvRepo.deleted)
	})

	t.Run("студенту запрещено", func(t *testing.T) {
		e := newTestService(t, testReservation(t, 50, domain.StatusBlock, domain.KindBlock))

		err := e.svc.DeleteBlock(context.Background(), studentID, 50)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

// TestGetUserReservations_ForeignHistory проверяет доступ к чужой истории
func TestGetUserReservations_ForeignHistory(t *testing.T) {
	e := newTestService(t, testReservation(t, 42, domain.StatusPending, domain.KindNormal))

	_, err := e.svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		ActorID: otherID,
		UserID:  studentID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := e.svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		ActorID: adminID,
		UserID:  studentID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetUserReservations_InvalidStatus(t *testing.T) {
	e := newTestService(t)

	_, err := e.svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		ActorID: studentID,
		UserID:  studentID,
		Status:  ptr.Ptr("desconocido"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestGetSpaceCalendar_InvalidRange проверяет валидацию периода календаря
func TestGetSpaceCalendar_InvalidRange(t *testing.T) {
	e := newTestService(t)

	_, err := e.svc.GetSpaceCalendar(context.Background(), &models.GetSpaceCalendarRequest{
		SpaceID: 10,
		From:    mustParse(t, "2026-03-13 00:00:00"),
		To:      mustParse(t, "2026-03-12 00:00:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
