package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/auth"
	"github.com/hostelhub/hostel-backend/internal/logger"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type UserService struct {
	users repo.Users
	rec   *audit.Recorder
	tm    *auth.TokenManager
	log   *slog.Logger
}

func NewUserService(users repo.Users, rec *audit.Recorder, tm *auth.TokenManager, log *slog.Logger) *UserService {
	return &UserService{users: users, rec: rec, tm: tm, log: log}
}

type CreateUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput, performedBy *string) (models.User, error) {
	op := logger.StartOp(s.log, "user.create", "email", in.Email)

	u := models.User{
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      in.Role,
		IsActive:  true,
	}
	if err := u.Validate(); err != nil {
		op.Fail("user create rejected", err)
		return models.User{}, err
	}
	if len(in.Password) < 8 {
		op.Fail("user create rejected", ErrInvalidCredentials)
		return models.User{}, ErrInvalidCredentials
	}

	exists, err := s.users.EmailExists(ctx, u.Email)
	if err != nil {
		op.Fail("user create failed", err)
		return models.User{}, err
	}
	if exists {
		op.Fail("user create rejected", ErrEmailExists)
		s.rec.LogFailure(models.ActionCreate, "User", performedBy, nil,
			"User creation failed - Email already exists", map[string]any{"email": u.Email})
		return models.User{}, ErrEmailExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		op.Fail("user create failed", err)
		return models.User{}, err
	}
	u.PasswordHash = hash

	// Staff ids are assigned explicitly at creation, not by a save hook.
	u.IDNumber, err = s.users.NextIDNumber(ctx, u.Role)
	if err != nil {
		op.Fail("user create failed", err)
		return models.User{}, err
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		op.Fail("user create failed", err)
		s.rec.LogFailure(models.ActionCreate, "User", performedBy, nil,
			"User creation failed - "+err.Error(), map[string]any{"email": u.Email})
		return models.User{}, err
	}

	op.Success("user created")
	s.rec.LogCreate("User", &created.ID, performedBy,
		"User "+created.Email+" created",
		map[string]any{"role": created.Role, "id_number": created.IDNumber})
	return created, nil
}

type UpdateUserInput struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

// Update applies a partial update and audits only the fields that changed.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput, performedBy *string) (models.User, error) {
	op := logger.StartOp(s.log, "user.update", "user_id", id)

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		op.Fail("user update failed", err)
		s.rec.LogFailure(models.ActionUpdate, "User", performedBy, nil,
			"User update failed - User not found", map[string]any{"user_id": id})
		return models.User{}, err
	}

	oldVals := map[string]any{}
	newVals := map[string]any{}

	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email != u.Email {
			exists, err := s.users.EmailExists(ctx, email)
			if err != nil {
				op.Fail("user update failed", err)
				return models.User{}, err
			}
			if exists {
				op.Fail("user update rejected", ErrEmailExists)
				s.rec.LogFailure(models.ActionUpdate, "User", performedBy, &u.ID,
					"User update failed - Email already exists", map[string]any{"email": email})
				return models.User{}, ErrEmailExists
			}
			oldVals["email"], newVals["email"] = u.Email, email
			u.Email = email
		}
	}
	if in.FirstName != nil && *in.FirstName != u.FirstName {
		oldVals["first_name"], newVals["first_name"] = u.FirstName, *in.FirstName
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil && *in.LastName != u.LastName {
		oldVals["last_name"], newVals["last_name"] = u.LastName, *in.LastName
		u.LastName = *in.LastName
	}
	if in.Phone != nil && *in.Phone != u.Phone {
		oldVals["phone"], newVals["phone"] = u.Phone, *in.Phone
		u.Phone = *in.Phone
	}
	if in.Role != nil && *in.Role != u.Role {
		if !models.ValidRole(*in.Role) {
			op.Fail("user update rejected", ErrWrongRole)
			return models.User{}, ErrWrongRole
		}
		oldVals["role"], newVals["role"] = u.Role, *in.Role
		u.Role = *in.Role
	}
	if in.IsActive != nil && *in.IsActive != u.IsActive {
		oldVals["is_active"], newVals["is_active"] = u.IsActive, *in.IsActive
		u.IsActive = *in.IsActive
	}

	if len(oldVals) == 0 {
		op.Success("user update: no changes")
		return u, nil
	}

	if err := s.users.Update(ctx, u); err != nil {
		op.Fail("user update failed", err)
		s.rec.LogFailure(models.ActionUpdate, "User", performedBy, &u.ID,
			"User update failed - "+err.Error(), nil)
		return models.User{}, err
	}

	op.Success("user updated")
	s.rec.LogUpdate("User", &u.ID, performedBy,
		"User "+u.Email+" updated", oldVals, newVals, nil)
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id, oldPassword, newPassword string, performedBy *string) error {
	op := logger.StartOp(s.log, "user.change_password", "user_id", id)

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		op.Fail("password change failed", err)
		s.rec.LogFailure(models.ActionChangePassword, "User", performedBy, nil,
			"Password change failed - User not found", map[string]any{"user_id": id})
		return err
	}

	if err := auth.VerifyPassword(oldPassword, u.PasswordHash); err != nil {
		op.Fail("password change rejected", ErrInvalidCredentials)
		s.rec.LogFailure(models.ActionChangePassword, "User", performedBy, &u.ID,
			"Password change failed - Invalid old password", nil)
		return ErrInvalidCredentials
	}
	if oldPassword == newPassword {
		op.Fail("password change rejected", ErrSamePassword)
		return ErrSamePassword
	}
	if len(newPassword) < 8 {
		op.Fail("password change rejected", ErrInvalidCredentials)
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		op.Fail("password change failed", err)
		return err
	}
	if err := s.users.SetPasswordHash(ctx, u.ID, hash); err != nil {
		op.Fail("password change failed", err)
		return err
	}

	op.Success("password changed")
	s.rec.LogPasswordChange(&u, performedBy, "", nil)
	return nil
}

// ToggleDelete flips the soft-delete flag: deleted users are restored,
// active users are soft-deleted.
func (s *UserService) ToggleDelete(ctx context.Context, id string, performedBy *string) (models.User, error) {
	op := logger.StartOp(s.log, "user.toggle_delete", "user_id", id)

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		op.Fail("toggle delete failed", err)
		s.rec.LogFailure(models.ActionToggleDelete, "User", performedBy, nil,
			"Failed to toggle delete - User not found", map[string]any{"user_id": id})
		return models.User{}, err
	}

	u.IsDeleted = !u.IsDeleted
	if err := s.users.SetDeleted(ctx, u.ID, u.IsDeleted); err != nil {
		op.Fail("toggle delete failed", err)
		return models.User{}, err
	}

	op.Success("toggle delete applied")
	s.rec.LogToggleDelete(&u, performedBy, u.IsDeleted, "", nil)
	return u, nil
}

type LoginResult struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// Login authenticates by email and password and, when role is non-empty,
// requires the account to hold that role. Every failed attempt is audited
// with the reason; audit outcome never changes the returned error.
func (s *UserService) Login(ctx context.Context, email, password, role string, metadata map[string]any) (LoginResult, error) {
	op := logger.StartOp(s.log, "user.login", "email", email)

	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		op.Fail("login rejected", ErrInvalidCredentials)
		s.rec.LogFailure(models.ActionLogin, "User", nil, nil,
			"Failed login attempt for "+email+" - Invalid credentials", metadata)
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		op.Fail("login rejected", ErrInvalidCredentials)
		s.rec.LogFailure(models.ActionLogin, "User", &u.ID, &u.ID,
			"Failed login attempt for "+u.Email+" - Invalid credentials", metadata)
		return LoginResult{}, ErrInvalidCredentials
	}
	if u.IsDeleted {
		op.Fail("login rejected", ErrAccountDeleted)
		s.rec.LogFailure(models.ActionLogin, "User", &u.ID, &u.ID,
			"Failed login attempt for "+u.Email+" - Account deleted", metadata)
		return LoginResult{}, ErrAccountDeleted
	}
	if !u.IsActive {
		op.Fail("login rejected", ErrAccountInactive)
		s.rec.LogFailure(models.ActionLogin, "User", &u.ID, &u.ID,
			"Failed login attempt for "+u.Email+" - Account inactive", metadata)
		return LoginResult{}, ErrAccountInactive
	}
	if role != "" && u.Role != role {
		op.Fail("login rejected", ErrWrongRole)
		s.rec.LogFailure(models.ActionLogin, "User", &u.ID, &u.ID,
			"Failed login attempt for "+u.Email+" - Invalid role "+role, metadata)
		return LoginResult{}, ErrWrongRole
	}

	access, refresh, exp, err := s.tm.GeneratePair(u.ID, u.Role)
	if err != nil {
		op.Fail("login failed", err)
		return LoginResult{}, err
	}

	op.Success("login")
	s.rec.LogLogin(&u, "", metadata)
	return LoginResult{User: u, AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

func (s *UserService) Logout(ctx context.Context, userID string, metadata map[string]any) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// Stateless tokens: nothing to revoke, still worth the trail.
		s.rec.LogLogout(nil, "User "+userID+" logged out", metadata)
		return
	}
	s.rec.LogLogout(&u, "", metadata)
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	return u, notFound(err)
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.users.List(ctx, limit, offset)
}
