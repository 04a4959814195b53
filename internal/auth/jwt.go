package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/priyansh911911/ashokacrm-sub000/internal/core"
)

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken signs a session into a bearer token.
func GenerateToken(sess core.Session) (string, error) {
	if sess.UserID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"userId":     sess.UserID,
		"username":   sess.Username,
		"role":       sess.Role,
		"department": sess.Department,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken rebuilds the session carried by a bearer token.
func ValidateToken(tokenString string) (core.Session, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return core.Session{}, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return core.Session{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return core.Session{}, errors.New("invalid token claims")
	}

	sess := core.Session{}
	sess.UserID, _ = claims["userId"].(string)
	sess.Username, _ = claims["username"].(string)
	sess.Role, _ = claims["role"].(string)
	sess.Department, _ = claims["department"].(string)

	if sess.UserID == "" {
		return core.Session{}, errors.New("invalid token claims")
	}
	return sess, nil
}
