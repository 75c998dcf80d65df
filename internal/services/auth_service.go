package services

import (
	"log"
	"os"

	"rionido/pkg/utils"
)

type AuthServiceInterface interface {
	// Login checks the shared staff password and returns a signed token.
	Login(password string) (string, error)
}

type AuthService struct {
	hash string
}

// NewAuthService resolves the staff credential once at startup. It prefers a
// pre-computed STAFF_PASSWORD_HASH; when only the plain STAFF_PASSWORD is
// configured, it hashes it so the comparison path stays uniform.
func NewAuthService() AuthServiceInterface {
	svc := &AuthService{hash: os.Getenv("STAFF_PASSWORD_HASH")}
	if svc.hash == "" {
		if plain := os.Getenv("STAFF_PASSWORD"); plain != "" {
			hashed, err := utils.HashPassword(plain)
			if err != nil {
				log.Printf("failed to hash STAFF_PASSWORD: %v", err)
			} else {
				svc.hash = hashed
				log.Println("STAFF_PASSWORD_HASH not set, hashed STAFF_PASSWORD at startup")
			}
		}
	}
	return svc
}

func (a *AuthService) Login(password string) (string, error) {
	if password == "" {
		return "", utils.ErrInvalidInput
	}

	if a.hash == "" || utils.ComparePasswords(a.hash, password) != nil {
		return "", utils.ErrUnauthorized
	}

	return utils.CreateToken("staff", "staff")
}
