package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/invite"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/session"
	"afyajirani-backend/internal/store"
	"afyajirani-backend/pkg/utils"

	"go.uber.org/zap"
)

// Messages shown on the signup and login forms.
const (
	MsgInvalidInvite     = "Invalid invite code"
	MsgInvalidCredential = "Invalid email or password"
)

// Accounts handles signup, login and logout.
type Accounts struct {
	users     store.UserStore
	hospitals store.HospitalStore
	audit     store.AuditStore
	tokens    *session.Manager
	revoker   session.Revoker
	logger    *zap.Logger
}

func NewAccounts(users store.UserStore, hospitals store.HospitalStore, auditLog store.AuditStore,
	tokens *session.Manager, revoker session.Revoker, logger *zap.Logger) *Accounts {
	return &Accounts{
		users:     users,
		hospitals: hospitals,
		audit:     auditLog,
		tokens:    tokens,
		revoker:   revoker,
		logger:    logger.Named("accounts"),
	}
}

// Signup creates a community or doctor account. A doctor must present an
// invite code that resolves to a hospital; otherwise no account is created.
func (a *Accounts) Signup(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	user := &models.User{
		FullName: utils.CleanText(in.FullName),
		Email:    normalizeEmail(in.Email),
		Role:     in.Role,
	}
	if user.FullName == "" || user.Email == "" {
		return nil, apperr.Validation("Full name and email are required")
	}

	switch in.Role {
	case models.RoleCommunity:
	case models.RoleDoctor:
		code := invite.Normalize(in.InviteCode)
		if !invite.Valid(code) {
			return nil, apperr.Validation(MsgInvalidInvite)
		}
		hospital, err := a.hospitals.FindHospitalByInviteCode(ctx, code)
		if apperr.IsKind(err, apperr.NotFound) {
			return nil, apperr.Validation(MsgInvalidInvite)
		}
		if err != nil {
			return nil, err
		}
		user.HospitalID = &hospital.ID
	default:
		return nil, apperr.Validation("Role must be community or doctor")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := a.users.Create(ctx, user); err != nil {
		return nil, err
	}

	audit(ctx, a.audit, a.logger, AuditSignup, user.Email, "role="+user.Role)
	return user, nil
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

func (a *Accounts) Login(ctx context.Context, in models.LoginInput) (*LoginResult, error) {
	user, err := a.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if apperr.IsKind(err, apperr.NotFound) {
		return nil, apperr.Auth(MsgInvalidCredential)
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(in.Password, user.PasswordHash) {
		return nil, apperr.Auth(MsgInvalidCredential)
	}

	actor := access.Authenticated(user.ID, user.Role, user.HospitalID)
	actor.Email = user.Email
	token, claims, err := a.tokens.Issue(actor)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (a *Accounts) Logout(ctx context.Context, claims *session.Claims) error {
	if err := a.revoker.Revoke(ctx, claims.TokenID(), a.tokens.Remaining(claims)); err != nil {
		return apperr.Data("Failed to sign out", err)
	}
	return nil
}

func (a *Accounts) Profile(ctx context.Context, userID uint64) (*models.User, error) {
	return a.users.FindByID(ctx, userID)
}

// SeedAdmin creates the admin account if it does not exist yet.
func (a *Accounts) SeedAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	_, err := a.users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !apperr.IsKind(err, apperr.NotFound) {
		return false, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := &models.User{FullName: "Administrator", Email: email, PasswordHash: hash, Role: models.RoleAdmin}
	if err := a.users.Create(ctx, admin); err != nil {
		return false, err
	}
	a.logger.Info("admin account seeded", zap.String("email", email))
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
