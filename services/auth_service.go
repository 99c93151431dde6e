package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"redakce-cms/models"
	"redakce-cms/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

type AuthService interface {
	Register(form models.RegisterForm) (*models.User, error)
	LoginWeb(username, password string) (*models.User, error)
	LoginAPI(username, password string) (*models.APILoginResponse, error)
	ResolveToken(token string) (*models.User, error)
	ChangePassword(userID uint, form models.ChangePasswordForm) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateProfile(userID uint, form models.ProfileEditForm) error
	SetAvatar(userID uint, path string) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *authService) Register(form models.RegisterForm) (*models.User, error) {
	if _, err := s.userRepo.GetByUsername(form.Username); err == nil {
		return nil, models.E(models.ErrValidation, "Uživatelské jméno je již obsazeno.")
	}
	if _, err := s.userRepo.GetByEmail(form.Email); err == nil {
		return nil, models.E(models.ErrValidation, "Email je již použit.")
	}
	if !hasUpper.MatchString(form.Password) {
		return nil, models.E(models.ErrValidation, "Heslo musí obsahovat alespoň 1 velké písmeno.")
	}
	if !hasDigit.MatchString(form.Password) {
		return nil, models.E(models.ErrValidation, "Heslo musí obsahovat alespoň 1 číslo.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginWeb answers with one generic message for both unknown user and
// wrong password.
func (s *authService) LoginWeb(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, models.E(models.ErrInvalidCredentials, "Špatné jméno nebo heslo.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, models.E(models.ErrInvalidCredentials, "Špatné jméno nebo heslo.")
	}
	return user, nil
}

func (s *authService) LoginAPI(username, password string) (*models.APILoginResponse, error) {
	user, err := s.LoginWeb(username, password)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	token := hex.EncodeToString(buf)

	if err := s.tokenRepo.Create(&models.ApiToken{Token: token, UserID: user.ID}); err != nil {
		return nil, err
	}

	return &models.APILoginResponse{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	}, nil
}

// ResolveToken looks the bearer token up with no freshness check;
// tokens stay valid until the token store is cleared.
func (s *authService) ResolveToken(token string) (*models.User, error) {
	if token == "" {
		return nil, models.E(models.ErrInvalidCredentials, "Neplatný token.")
	}
	t, err := s.tokenRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.E(models.ErrInvalidCredentials, "Neplatný token.")
		}
		return nil, err
	}
	return &t.User, nil
}

func (s *authService) ChangePassword(userID uint, form models.ChangePasswordForm) error {
	if len(form.Password) < 8 {
		return models.E(models.ErrValidation, "Heslo musí mít alespoň 8 znaků.")
	}
	if form.Password != form.Confirm {
		return models.E(models.ErrValidation, "Hesla se neshodují.")
	}
	if !hasUpper.MatchString(form.Password) {
		return models.E(models.ErrValidation, "Heslo musí obsahovat alespoň 1 velké písmeno.")
	}
	if !hasDigit.MatchString(form.Password) {
		return models.E(models.ErrValidation, "Heslo musí obsahovat alespoň 1 číslo.")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.ForcePasswordChange = false
	user.TempPasswordIssuedAt = nil
	return s.userRepo.Update(user)
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}
	return user, nil
}

func (s *authService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID uint, form models.ProfileEditForm) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}

	user.DisplayName = strings.TrimSpace(form.DisplayName)
	user.Bio = strings.TrimSpace(form.Bio)
	user.Gender = strings.TrimSpace(form.Gender)
	if form.Theme != "" {
		user.Theme = form.Theme
	}
	if form.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", form.BirthDate)
		if err != nil {
			return models.E(models.ErrValidation, "Neplatné datum narození.")
		}
		user.BirthDate = &birth
	}

	return s.userRepo.Update(user)
}

func (s *authService) SetAvatar(userID uint, path string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}
	user.AvatarPath = path
	return s.userRepo.Update(user)
}
