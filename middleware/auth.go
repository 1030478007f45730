package middleware

import (
	"techforum/config"
	"techforum/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const UserIDKey = "user_id"

// TokenCookie is the cookie the signed token travels in.
const TokenCookie = "jwt"

var httpHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Auth rejects requests without a valid token cookie before any handler
// runs. A missing cookie and an invalid or expired token are reported
// differently, but expiry and tampering are deliberately not distinguished.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			httpHelper.SendUnauthorizedError(c, "Need to Sign In")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil || !token.Valid {
			httpHelper.SendUnauthorizedError(c, "You are not authorized")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID reads the identity the Auth middleware resolved.
func CurrentUserID(c *gin.Context) uint {
	id, _ := c.Get(UserIDKey)
	uid, _ := id.(uint)
	return uid
}
