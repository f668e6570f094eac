package policy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/internal/service/policy/models"
	"github.com/m04kA/UDP-ReservationService/pkg/ptr"
	"github.com/m04kA/UDP-ReservationService/pkg/types"
)

// --- Фейки зависимостей ---

type fakePolicyRepo struct {
	policy  *domain.ReservationPolicy
	updated *domain.ReservationPolicy
}

func (f *fakePolicyRepo) Get(_ context.Context) (*domain.ReservationPolicy, error) {
	cp := *f.policy
	return &cp, nil
}

func (f *fakePolicyRepo) Update(_ context.Context, policy *domain.ReservationPolicy) error {
	cp := *policy
	f.updated = &cp
	return nil
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

type fakeAudit struct {
	records []string
}

func (f *fakeAudit) Record(_ context.Context, _, action string, _, _ int64, _, _ interface{}) {
	f.records = append(f.records, action)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

const (
	studentID = int64(1)
	adminID   = int64(2)
)

func testPolicy() *domain.ReservationPolicy {
	return &domain.ReservationPolicy{
		ID:                    1,
		AdvanceWindowDays:     14,
		MaxActiveReservations: 3,
		MaxDurationHours:      4,
		OpeningTime:           types.TimeString("08:00"),
		ClosingTime:           types.TimeString("22:00"),
		UpdatedAt:             time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

type env struct {
	svc   *Service
	repo  *fakePolicyRepo
	audit *fakeAudit
}

func newTestService() *env {
	repo := &fakePolicyRepo{policy: testPolicy()}
	audit := &fakeAudit{}

	users := map[int64]*domain.User{
		studentID: {ID: studentID, Role: domain.RoleStudent, Active: true},
		adminID:   {ID: adminID, Role: domain.RoleAdmin, Active: true},
	}

	svc := NewService(repo, &fakeUserRepo{users: users}, audit, noopLogger{})
	return &env{svc: svc, repo: repo, audit: audit}
}

// --- Тесты ---

func TestGet(t *testing.T) {
	e := newTestService()

	resp, err := e.svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 14, resp.AdvanceWindowDays)
	assert.Equal(t, "08:00", resp.OpeningTime)
	assert.Equal(t, "22:00", resp.ClosingTime)
}

// TestUpdate_Partial проверяет частичное обновление с сохранением прочих полей
func TestUpdate_Partial(t *testing.T) {
	e := newTestService()

	resp, err := e.svc.Update(context.Background(), &models.UpdatePolicyRequest{
		ActorID:          adminID,
		MaxDurationHours: ptr.Ptr(6),
		ClosingTime:      ptr.Ptr("23:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.MaxDurationHours)
	assert.Equal(t, "23:00", resp.ClosingTime)
	// Неуказанные поля не тронуты
	assert.Equal(t, 14, resp.AdvanceWindowDays)
	assert.Equal(t, 3, resp.MaxActiveReservations)

	require.NotNil(t, e.repo.updated)
	assert.Equal(t, 6, e.repo.updated.MaxDurationHours)
	assert.Equal(t, []string{domain.AuditActionUpdate}, e.audit.records)
}

// TestUpdate_Bounds проверяет границы значений политики
func TestUpdate_Bounds(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdatePolicyRequest
	}{
		{name: "окно планирования отрицательное", req: &models.UpdatePolicyRequest{AdvanceWindowDays: ptr.Ptr(-1)}},
		{name: "окно планирования больше года", req: &models.UpdatePolicyRequest{AdvanceWindowDays: ptr.Ptr(366)}},
		{name: "лимит заявок нулевой", req: &models.UpdatePolicyRequest{MaxActiveReservations: ptr.Ptr(0)}},
		{name: "лимит заявок выше потолка", req: &models.UpdatePolicyRequest{MaxActiveReservations: ptr.Ptr(101)}},
		{name: "длительность нулевая", req: &models.UpdatePolicyRequest{MaxDurationHours: ptr.Ptr(0)}},
		{name: "длительность больше суток", req: &models.UpdatePolicyRequest{MaxDurationHours: ptr.Ptr(25)}},
		{name: "время открытия не по формату", req: &models.UpdatePolicyRequest{OpeningTime: ptr.Ptr("8am")}},
		{name: "время закрытия не по формату", req: &models.UpdatePolicyRequest{ClosingTime: ptr.Ptr("25:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestService()

			tt.req.ActorID = adminID
			_, err := e.svc.Update(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, e.repo.updated)
		})
	}
}

// TestUpdate_EmptyWorkingWindow проверяет, что открытие раньше закрытия
func TestUpdate_EmptyWorkingWindow(t *testing.T) {
	e := newTestService()

	_, err := e.svc.Update(context.Background(), &models.UpdatePolicyRequest{
		ActorID:     adminID,
		OpeningTime: ptr.Ptr("22:00"),
		ClosingTime: ptr.Ptr("08:00"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, e.repo.updated)
}

func TestUpdate_AccessDenied(t *testing.T) {
	e := newTestService()

	_, err := e.svc.Update(context.Background(), &models.UpdatePolicyRequest{
		ActorID:           studentID,
		AdvanceWindowDays: ptr.Ptr(30),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, e.repo.updated)
}
