package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type JWTClaims struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	StudentID *string `json:"student_id,omitempty"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "school-erp-secret-key" // Default for development
	}
	return []byte(secret)
}

func GenerateJWT(userID, username, role string, studentID *string) (string, error) {
	claims := JWTClaims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "school-erp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}

// Outcome is the result of an access check.
type Outcome int

const (
	Allowed Outcome = iota
	Unauthenticated
	Forbidden
)

// Authorize decides whether a request with the given claims may proceed.
// Nil claims means no valid token was presented. An empty allowedRoles list
// admits any authenticated user.
func Authorize(claims *JWTClaims, allowedRoles ...string) Outcome {
	if claims == nil {
		return Unauthenticated
	}
	if len(allowedRoles) == 0 {
		return Allowed
	}
	for _, role := range allowedRoles {
		if claims.Role == role {
			return Allowed
		}
	}
	return Forbidden
}
