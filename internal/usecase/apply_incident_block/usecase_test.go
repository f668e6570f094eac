package apply_incident_block

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// --- Фейки зависимостей ---

type fakeReservationRepo struct {
	overlapping  []*domain.Reservation
	cancelledIDs []int64
	block        *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	rsv.ID = 100
	f.block = rsv
	return rsv, nil
}

func (f *fakeReservationRepo) GetBySpaceInRange(_ context.Context, _ int64, _, _ time.Time, _ []domain.ReservationStatus, _ *int64) ([]*domain.Reservation, error) {
	return f.overlapping, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, _ *string, _ time.Time) error {
	f.cancelledIDs = append(f.cancelledIDs, id)
	return nil
}

type fakeIncidentRepo struct {
	incident  *domain.Incident
	newStatus domain.IncidentStatus
}

func (f *fakeIncidentRepo) GetByID(_ context.Context, _ int64) (*domain.Incident, error) {
	return f.incident, nil
}

func (f *fakeIncidentRepo) UpdateStatus(_ context.Context, _ int64, status domain.IncidentStatus) error {
	f.newStatus = status
	return nil
}

type fakeSpaceRepo struct{}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.Space, error) {
	return &domain.Space{ID: 5, Name: "Cancha Futbol 1"}, nil
}

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, nil
}

type fakeNotifier struct {
	cancellations int
}

func (f *fakeNotifier) NotifyCancellation(_ context.Context, _ *domain.Reservation, _ string, _ string) {
	f.cancellations++
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

func openIncident() *domain.Incident {
	return &domain.Incident{
		ID:          7,
		SpaceID:     5,
		Kind:        "mantenimiento",
		Description: "cancha inundada",
		Status:      domain.IncidentOpen,
		ReportedBy:  10,
	}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	start, err := time.Parse(domain.DateTimeFormat, "2026-03-12 08:00:00")
	require.NoError(t, err)
	return &Request{
		ActorID:    1,
		IncidentID: 7,
		Start:      start,
		End:        start.Add(8 * time.Hour),
	}
}

func newTestUseCase(rsvRepo *fakeReservationRepo, incRepo *fakeIncidentRepo, notifier *fakeNotifier, audit *fakeAudit) *UseCase {
	return NewUseCase(
		rsvRepo,
		incRepo,
		&fakeSpaceRepo{},
		&fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleAdmin, Active: true}},
		notifier,
		audit,
		&fakeTxManager{},
		noopLogger{},
	)
}

// --- Тесты ---

// TestExecute_CancelsOverlappingReservations проверяет отмену попавших под
// блокировку обычных резерваций и уведомление их владельцев
func TestExecute_CancelsOverlappingReservations(t *testing.T) {
	overlapping := []*domain.Reservation{
		{ID: 11, UserID: 10, SpaceID: 5, Status: domain.StatusApproved, Kind: domain.KindNormal},
		{ID: 12, UserID: 20, SpaceID: 5, Status: domain.StatusPending, Kind: domain.KindNormal},
	}
	rsvRepo := &fakeReservationRepo{overlapping: overlapping}
	incRepo := &fakeIncidentRepo{incident: openIncident()}
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}
	uc := newTestUseCase(rsvRepo, incRepo, notifier, audit)

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.BlockID)
	assert.Equal(t, []int64{11, 12}, resp.CancelledReservations)
	assert.Equal(t, []int64{11, 12}, rsvRepo.cancelledIDs)
	assert.Equal(t, 2, notifier.cancellations)
	// Блокировка создается типа incidencia в статусе bloqueo
	assert.Equal(t, domain.StatusBlock, rsvRepo.block.Status)
	assert.Equal(t, domain.KindIncident, rsvRepo.block.Kind)
	// Аудит: блокировка + инцидент + две отмены
	assert.Equal(t, 4, audit.records)
}

// TestExecute_ExistingBlockConflict проверяет, что два пересекающихся
// bloqueo на одном пространстве создать нельзя
func TestExecute_ExistingBlockConflict(t *testing.T) {
	overlapping := []*domain.Reservation{
		{ID: 13, UserID: 1, SpaceID: 5, Status: domain.StatusBlock, Kind: domain.KindBlock},
	}
	rsvRepo := &fakeReservationRepo{overlapping: overlapping}
	incRepo := &fakeIncidentRepo{incident: openIncident()}
	notifier := &fakeNotifier{}
	audit := &fakeAudit{}
	uc := newTestUseCase(rsvRepo, incRepo, notifier, audit)

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	// Никаких побочных эффектов: ни блокировки, ни отмен, ни смены статуса
	assert.Nil(t, rsvRepo.block)
	assert.Empty(t, rsvRepo.cancelledIDs)
	assert.Empty(t, incRepo.newStatus)
	assert.Equal(t, 0, notifier.cancellations)
	assert.Equal(t, 0, audit.records)
}

// TestExecute_IncidentMovesToInProgress проверяет перевод инцидента в en_progreso
func TestExecute_IncidentMovesToInProgress(t *testing.T) {
	incRepo := &fakeIncidentRepo{incident: openIncident()}
	uc := newTestUseCase(&fakeReservationRepo{}, incRepo, &fakeNotifier{}, &fakeAudit{})

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, domain.IncidentInProgress, incRepo.newStatus)
	assert.Equal(t, string(domain.IncidentInProgress), resp.IncidentStatus)
	assert.Empty(t, resp.CancelledReservations)
}

// TestExecute_InvalidTransition проверяет отказ для разрешенных и закрытых инцидентов
func TestExecute_InvalidTransition(t *testing.T) {
	tests := []struct {
		name   string
		status domain.IncidentStatus
	}{
		{name: "resolved incident", status: domain.IncidentResolved},
		{name: "closed incident", status: domain.IncidentClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incident := openIncident()
			incident.Status = tt.status
			uc := newTestUseCase(&fakeReservationRepo{}, &fakeIncidentRepo{incident: incident},
				&fakeNotifier{}, &fakeAudit{})

			_, err := uc.Execute(context.Background(), validRequest(t))
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

// TestExecute_AccessDenied проверяет, что не-администратор не может блокировать
func TestExecute_AccessDenied(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{},
		&fakeIncidentRepo{incident: openIncident()},
		&fakeSpaceRepo{},
		&fakeUserRepo{user: &domain.User{ID: 2, Role: domain.RoleStaff, Active: true}},
		&fakeNotifier{},
		&fakeAudit{},
		&fakeTxManager{},
		noopLogger{},
	)

	req := validRequest(t)
	req.ActorID = 2
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// TestExecute_InvalidRange проверяет валидацию интервала блокировки
func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeIncidentRepo{incident: openIncident()},
		&fakeNotifier{}, &fakeAudit{})

	req := validRequest(t)
	req.Start, req.End = req.End, req.Start
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
