package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt"
)

var tokenLifeTime = time.Hour * 24

type JWT struct {
	secret []byte
}

func New(secret []byte) *JWT {
	return &JWT{secret: secret}
}

func (j *JWT) Create(claims map[string]string) (string, error) {
	mapClaims := jwtgo.MapClaims{
		"exp": time.Now().Add(tokenLifeTime).Unix(),
	}
	for k, v := range claims {
		mapClaims[k] = v
	}

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed sign token: %w", err)
	}

	return signed, nil
}

func (j *JWT) Verify(tokenString, key string) (string, bool, error) {
	token, err := jwtgo.Parse(tokenString, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed parse token: %w", err)
	}

	claims, ok := token.Claims.(jwtgo.MapClaims)
	if !ok || !token.Valid {
		return "", false, errors.New("token is not valid")
	}

	value, ok := claims[key].(string)
	if !ok {
		return "", false, nil
	}

	return value, true, nil
}
