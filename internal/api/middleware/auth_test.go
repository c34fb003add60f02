package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthenticator(testSigningKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id":        ctx.MustGet(ContextKeyUserID),
			"association_id": ctx.MustGet(ContextKeyAssociationID),
		})
	})

	return router
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}) string {
	t.Helper()

	token := jwt.NewWithClaims(method, UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:        7,
		AssociationID: 1,
	})

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func callProtected(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	router := protectedRouter()

	t.Run("valid HS256 token passes and sets the scope", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSigningKey))

		recorder := callProtected(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"user_id":7`)
		assert.Contains(t, recorder.Body.String(), `"association_id":1`)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)

		recorder := callProtected(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("other-key"))

		recorder := callProtected(router, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			UserID:        7,
			AssociationID: 1,
		})
		signed, err := token.SignedString([]byte(testSigningKey))
		require.NoError(t, err)

		recorder := callProtected(router, "Bearer "+signed)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		recorder := callProtected(router, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		recorder := callProtected(router, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
