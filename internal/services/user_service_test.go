package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/auth"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/worker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// trailStore collects persisted audit rows for assertions.
type trailStore struct {
	mu   sync.Mutex
	rows []models.AuditLog
}

func (s *trailStore) Create(_ context.Context, l models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, l)
	return nil
}

func (s *trailStore) List(_ context.Context, limit, offset int) ([]models.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AuditLog, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *trailStore) find(action models.AuditAction, status models.AuditStatus) *models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].Action == action && s.rows[i].Status == status {
			return &s.rows[i]
		}
	}
	return nil
}

func waitForTrail(t *testing.T, s *trailStore, action models.AuditAction, status models.AuditStatus) models.AuditLog {
	t.Helper()
	var got *models.AuditLog
	require.Eventually(t, func() bool {
		got = s.find(action, status)
		return got != nil
	}, 2*time.Second, 5*time.Millisecond)
	return *got
}

type memUsers struct {
	mu      sync.Mutex
	byID    map[string]models.User
	nextSeq int
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]models.User{}}
}

func (m *memUsers) Create(_ context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSeq++
	u.ID = fmt.Sprintf("user-%d", m.nextSeq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return models.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, pgx.ErrNoRows
}

func (m *memUsers) List(_ context.Context, limit, offset int) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) SetPasswordHash(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = hash
	m.byID[id] = u
	return nil
}

func (m *memUsers) SetDeleted(_ context.Context, id string, deleted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.IsDeleted = deleted
	m.byID[id] = u
	return nil
}

func (m *memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// NextIDNumber mirrors the repo contract: max over the numeric suffix, so
// the sequence keeps climbing past 999 and survives deleted rows.
func (m *memUsers) NextIDNumber(_ context.Context, role string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := models.IDNumberPrefix(role)
	last := 0
	for _, u := range m.byID {
		if !strings.HasPrefix(u.IDNumber, prefix+"-ID-") {
			continue
		}
		if n, err := strconv.Atoi(u.IDNumber[len(prefix+"-ID-"):]); err == nil && n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s-ID-%03d", prefix, last+1), nil
}

func newUserFixture(t *testing.T) (*UserService, *memUsers, *trailStore) {
	t.Helper()
	users := newMemUsers()
	trail := &trailStore{}
	pool := worker.NewPool(2, testLogger())
	t.Cleanup(pool.Stop)
	rec := audit.NewRecorder(trail, pool, testLogger(), 3, time.Millisecond)
	tm := auth.NewTokenManager("access-secret", "refresh-secret", "test", 15*time.Minute, time.Hour)
	return NewUserService(users, rec, tm, testLogger()), users, trail
}

func seedUser(t *testing.T, svc *UserService, email, password, role string) models.User {
	t.Helper()
	u, err := svc.Create(context.Background(), CreateUserInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  password,
		Role:      role,
	}, nil)
	require.NoError(t, err)
	return u
}

func TestUserCreateAssignsIDNumberAndAudits(t *testing.T) {
	svc, _, trail := newUserFixture(t)

	u := seedUser(t, svc, "Jane@Hostel.Test", "s3cret-pass", models.RoleAdmin)
	assert.Equal(t, "jane@hostel.test", u.Email, "email is normalized")
	assert.Equal(t, "ADM-ID-001", u.IDNumber)
	assert.True(t, u.IsActive)

	row := waitForTrail(t, trail, models.ActionCreate, models.AuditSuccess)
	assert.Equal(t, "User", row.Entity)
	assert.Equal(t, "User jane@hostel.test created", row.Description)
	assert.Equal(t, "ADM-ID-001", row.Metadata["id_number"])
}

func TestUserIDNumbersClimbPastThreeDigits(t *testing.T) {
	svc, users, _ := newUserFixture(t)

	users.byID["u-999"] = models.User{
		ID: "u-999", Email: "veteran@hostel.test", Role: models.RoleStaff, IDNumber: "STA-ID-999",
	}

	u := seedUser(t, svc, "tenth@hostel.test", "s3cret-pass", models.RoleStaff)
	assert.Equal(t, "STA-ID-1000", u.IDNumber)

	next := seedUser(t, svc, "eleventh@hostel.test", "s3cret-pass", models.RoleStaff)
	assert.Equal(t, "STA-ID-1001", next.IDNumber, "sequence keeps climbing once ids reach four digits")
}

func TestUserCreateDuplicateEmailIsAudited(t *testing.T) {
	svc, _, trail := newUserFixture(t)
	seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:     "jane@hostel.test",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "different-pass",
		Role:      models.RoleStaff,
	}, nil)
	require.ErrorIs(t, err, ErrEmailExists)

	row := waitForTrail(t, trail, models.ActionCreate, models.AuditFailed)
	assert.Equal(t, "User creation failed - Email already exists", row.Description)
}

func TestUserCreateRejectsShortPassword(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:     "short@hostel.test",
		FirstName: "S",
		LastName:  "P",
		Password:  "short",
	}, nil)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserUpdateAuditsOnlyChangedFields(t *testing.T) {
	svc, _, trail := newUserFixture(t)
	u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)

	newPhone := "+2348000000"
	sameFirst := "Test"
	_, err := svc.Update(context.Background(), u.ID, UpdateUserInput{
		Phone:     &newPhone,
		FirstName: &sameFirst,
	}, &u.ID)
	require.NoError(t, err)

	row := waitForTrail(t, trail, models.ActionUpdate, models.AuditSuccess)
	assert.Equal(t, map[string]any{"phone": ""}, row.OldValues)
	assert.Equal(t, map[string]any{"phone": "+2348000000"}, row.NewValues)
}

func TestUserUpdateNoChangesEmitsNothing(t *testing.T) {
	svc, _, trail := newUserFixture(t)
	u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)

	same := "Test"
	_, err := svc.Update(context.Background(), u.ID, UpdateUserInput{FirstName: &same}, &u.ID)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Nil(t, trail.find(models.ActionUpdate, models.AuditSuccess))
}

func TestLoginSuccessIssuesTokensAndAudits(t *testing.T) {
	svc, _, trail := newUserFixture(t)
	u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleManager)

	res, err := svc.Login(context.Background(), "jane@hostel.test", "s3cret-pass", "", map[string]any{"ip": "10.1.1.1"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	row := waitForTrail(t, trail, models.ActionLogin, models.AuditSuccess)
	assert.Equal(t, "User jane@hostel.test logged in", row.Description)
	assert.Equal(t, "10.1.1.1", row.Metadata["ip"])
}

func TestLoginFailureReasons(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(t *testing.T, svc *UserService) (email, password, role string)
		wantErr error
		reason  string
	}{
		{
			name: "unknown email",
			setup: func(t *testing.T, svc *UserService) (string, string, string) {
				return "ghost@hostel.test", "whatever-pass", ""
			},
			wantErr: ErrInvalidCredentials,
			reason:  "Invalid credentials",
		},
		{
			name: "wrong password",
			setup: func(t *testing.T, svc *UserService) (string, string, string) {
				seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)
				return "jane@hostel.test", "wrong-pass", ""
			},
			wantErr: ErrInvalidCredentials,
			reason:  "Invalid credentials",
		},
		{
			name: "deleted account",
			setup: func(t *testing.T, svc *UserService) (string, string, string) {
				u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)
				_, err := svc.ToggleDelete(context.Background(), u.ID, nil)
				require.NoError(t, err)
				return "jane@hostel.test", "s3cret-pass", ""
			},
			wantErr: ErrAccountDeleted,
			reason:  "Account deleted",
		},
		{
			name: "inactive account",
			setup: func(t *testing.T, svc *UserService) (string, string, string) {
				u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)
				inactive := false
				_, err := svc.Update(context.Background(), u.ID, UpdateUserInput{IsActive: &inactive}, nil)
				require.NoError(t, err)
				return "jane@hostel.test", "s3cret-pass", ""
			},
			wantErr: ErrAccountInactive,
			reason:  "Account inactive",
		},
		{
			name: "wrong role",
			setup: func(t *testing.T, svc *UserService) (string, string, string) {
				seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)
				return "jane@hostel.test", "s3cret-pass", models.RoleAdmin
			},
			wantErr: ErrWrongRole,
			reason:  "Invalid role admin",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, trail := newUserFixture(t)
			email, password, role := tc.setup(t, svc)

			_, err := svc.Login(context.Background(), email, password, role, nil)
			require.ErrorIs(t, err, tc.wantErr)

			row := waitForTrail(t, trail, models.ActionLogin, models.AuditFailed)
			assert.Contains(t, row.Description, tc.reason)
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc, users, trail := newUserFixture(t)
	u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)

	err := svc.ChangePassword(context.Background(), u.ID, "wrong-pass", "brand-new-pass", nil)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	row := waitForTrail(t, trail, models.ActionChangePassword, models.AuditFailed)
	assert.Equal(t, "Password change failed - Invalid old password", row.Description)

	err = svc.ChangePassword(context.Background(), u.ID, "s3cret-pass", "s3cret-pass", nil)
	require.ErrorIs(t, err, ErrSamePassword)

	err = svc.ChangePassword(context.Background(), u.ID, "s3cret-pass", "brand-new-pass", nil)
	require.NoError(t, err)
	waitForTrail(t, trail, models.ActionChangePassword, models.AuditSuccess)

	stored, err := users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NoError(t, auth.VerifyPassword("brand-new-pass", stored.PasswordHash))
}

func TestToggleDeleteFlipsBothWays(t *testing.T) {
	svc, _, trail := newUserFixture(t)
	u := seedUser(t, svc, "jane@hostel.test", "s3cret-pass", models.RoleStaff)

	deleted, err := svc.ToggleDelete(context.Background(), u.ID, nil)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	restored, err := svc.ToggleDelete(context.Background(), u.ID, nil)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)

	waitForTrail(t, trail, models.ActionToggleDelete, models.AuditSuccess)
}
