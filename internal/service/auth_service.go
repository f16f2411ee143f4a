package service

import (
	"errors"

	"internhub/config"
	"internhub/internal/auth"
	"internhub/internal/domain"
	"internhub/internal/models"
	"internhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrPhoneExists  = errors.New("phone number already exists")
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrInvalidRole  = errors.New("role must be student or organisation")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Register creates a student or organisation account. Organisations start
// pending and must be verified by an admin; students are verified
// immediately. Admin accounts are seeded, never registered.
func (s *AuthService) Register(name, email, phone, password, role string) (*models.User, string, string, error) {
	if role != domain.RoleStudent && role != domain.RoleOrganisation {
		return nil, "", "", ErrInvalidRole
	}
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	if _, err := s.userRepo.GetByPhoneNumber(phone); err == nil {
		return nil, "", "", ErrPhoneExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	status := domain.UserStatusVerified
	if role == domain.RoleOrganisation {
		status = domain.UserStatusPending
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}
	return s.issueTokens(u)
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	return s.issueTokens(u)
}

// Refresh exchanges a valid refresh token for a new access token. The user
// is reloaded so role/status changes since issuance take effect.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role, u.Status)
}

// LoginWithGoogle finds or creates a student account linked to the Google
// identity. Accounts created this way are verified students with no local
// password.
func (s *AuthService) LoginWithGoogle(googleID, email, name string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByGoogleID(googleID)
	if err == nil {
		return s.issueTokens(u)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	// Link to an existing email account if one exists.
	u, err = s.userRepo.GetByEmail(email)
	if err == nil {
		u.GoogleID = &googleID
		if err := s.userRepo.Update(u); err != nil {
			return nil, "", "", err
		}
		return s.issueTokens(u)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	u = &models.User{
		Name:        name,
		Email:       email,
		PhoneNumber: "google:" + googleID, // placeholder; unique, updated on profile completion
		GoogleID:    &googleID,
		Role:        domain.RoleStudent,
		Status:      domain.UserStatusVerified,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}
	return s.issueTokens(u)
}

func (s *AuthService) issueTokens(u *models.User) (*models.User, string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role, u.Status)
	if err != nil {
		return u, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return u, access, "", err
	}
	return u, access, refresh, nil
}
