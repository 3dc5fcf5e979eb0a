package utils

import (
	"errors"
	"time"

	"website/global"
	"website/models/ctypes"

	"github.com/dgrijalva/jwt-go"
)

// CustomClaims 会话令牌负载
type CustomClaims struct {
	UserID string          `json:"user_id"`
	Name   string          `json:"name"`
	Role   ctypes.UserRole `json:"role"`
	jwt.StandardClaims
}

var (
	ErrTokenInvalid = errors.New("token无效")
	ErrTokenExpired = errors.New("token已过期")
)

// GenerateToken 生成会话令牌
func GenerateToken(userID, name string, role ctypes.UserRole) (string, error) {
	cfg := global.Config.Jwt
	claims := CustomClaims{
		UserID: userID,
		Name:   name,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(cfg.Expires) * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken 解析会话令牌
func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
