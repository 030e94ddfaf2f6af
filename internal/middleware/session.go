package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/AttendanceDesk/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// SessionClaims is what the society's auth service puts into operator tokens.
type SessionClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Session verifies the bearer token and puts the operator session on the
// request context. The raw token travels with it to the membership API.
func Session(secret []byte, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization header required"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := ParseSessionToken(raw, secret)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.DebugLevel, "session rejected",
				logger.String("error", err.Error()),
			)
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": msg})
			return
		}

		ctx := domain.WithSession(c.Request.Context(), domain.Session{
			OperatorID: claims.Subject,
			Name:       claims.Name,
			Role:       claims.Role,
			Token:      raw,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func ParseSessionToken(raw string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
