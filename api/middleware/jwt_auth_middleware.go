package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// JwtAuthMiddleware rejects requests without a valid HS256 bearer token.
// The caller's subject claim is stored in the context as x-user-id.
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			authToken := parts[1]
			authorized, err := isAuthorized(authToken, secret)
			if authorized {
				userID, err := extractSubject(authToken, secret)
				if err == nil {
					c.Set("x-user-id", userID)
					c.Next()
					return
				}
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": errMessage(err)})
			c.Abort()
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		c.Abort()
	}
}

func isAuthorized(requestToken, secret string) (bool, error) {
	_, err := jwt.Parse(requestToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func extractSubject(requestToken, secret string) (string, error) {
	token, err := jwt.Parse(requestToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}

func errMessage(err error) string {
	if err == nil {
		return "not authorized"
	}
	return err.Error()
}
