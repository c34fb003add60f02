package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
)

const (
	ContextKeyUserID        = "userID"
	ContextKeyAssociationID = "associationID"
)

type UserClaims struct {
	jwt.RegisteredClaims

	UserID        uint `json:"user_id"`
	AssociationID uint `json:"association_id"`
}

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT checks the bearer token and threads the user's association scope
// into the request context. Every tenant-scoped handler reads it from there.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing authorization header"))
			return
		}

		segments := strings.SplitN(header, " ", 2)
		if len(segments) != 2 || segments[0] != "Bearer" {
			response.RenderErr(ctx, response.ErrUnauthorized("malformed authorization header"))
			return
		}

		claims := &UserClaims{}
		token, err := jwt.ParseWithClaims(segments[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(a.signingKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid token"))
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyAssociationID, claims.AssociationID)
		ctx.Next()
	}
}
