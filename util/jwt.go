package util

import (
	"fmt"
	"strconv"
	"time"

	"movie_ratings_api/configs"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the identity subset carried inside the signed token.
type AuthClaims struct {
	UserId   int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

func CreateJwtToken(userId int64, username string, isAdmin bool) (string, error) {
	now := time.Now()
	expireHours := configs.GetConfigs().JwtExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	claims := AuthClaims{
		UserId:   userId,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userId, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.GetConfigs().JwtSecret))
}

func VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(configs.GetConfigs().JwtSecret), nil
	})

	if err != nil {
		return nil, err
	}
	if token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &claims, nil
}
