package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/DrGermanius/paysettle/internal/model"
)

const tokenCookie = "token"

// NewToken signs an access token carrying the user id and role.
func NewToken(secret string, uid int, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   strconv.Itoa(uid),
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// principalFromToken reads the access token from the Authorization header or,
// failing that, the token cookie.
func principalFromToken(c *fiber.Ctx, secret []byte) (model.Principal, error) {
	tokenString := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
		tokenString = strings.TrimSpace(tokenString[7:])
	}
	if tokenString == "" {
		tokenString = c.Cookies(tokenCookie)
	}
	if tokenString == "" || len(secret) == 0 {
		return model.Principal{}, ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return model.Principal{}, err
	}

	id, ok := claims["id"].(string)
	if !ok {
		return model.Principal{}, errors.New("token has no user id")
	}
	uid, err := strconv.Atoi(id)
	if err != nil {
		return model.Principal{}, err
	}

	role, _ := claims["role"].(string)
	return model.Principal{UserID: uid, Role: role}, nil
}
