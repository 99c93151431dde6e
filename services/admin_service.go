package services

import (
	"crypto/rand"
	"math/big"
	"time"

	"redakce-cms/models"
	"redakce-cms/repositories"

	"golang.org/x/crypto/bcrypt"
)

const tempPasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const tempPasswordLength = 12

type AdminService interface {
	Login(username, password string) (*models.User, error)
	ListUsers() ([]models.User, error)
	ResetPassword(userID uint) (string, error)
}

type adminService struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// Login only succeeds for users whose role is exactly admin.
func (s *adminService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil || user.Role != models.RoleAdmin {
		return nil, models.E(models.ErrInvalidCredentials, "Neplatné admin přihlášení.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, models.E(models.ErrInvalidCredentials, "Neplatné admin přihlášení.")
	}
	return user, nil
}

func (s *adminService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// ResetPassword issues a temporary password, stores only its hash and
// returns the plaintext exactly once for display to the admin.
func (s *adminService) ResetPassword(userID uint) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", models.E(models.ErrNotFound, "Uživatel nenalezen.")
	}

	temp, err := randomPassword(tempPasswordLength)
	if err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	user.Password = string(hashed)
	user.ForcePasswordChange = true
	user.TempPasswordIssuedAt = &now

	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}
	return temp, nil
}

func randomPassword(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordAlphabet[idx.Int64()]
	}
	return string(out), nil
}
