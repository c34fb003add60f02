package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/giveplus/giveplus-api/internal/api/middleware"
	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type stubUserService struct {
	getFn func(ctx context.Context, id uint) (domain.User, error)
}

func (s *stubUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	return s.getFn(ctx, id)
}

func getCurrentUser(t *testing.T, svc UserService, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/users/me", func(ctx *gin.Context) {
		if userID != 0 {
			ctx.Set(middleware.ContextKeyUserID, userID)
		}
		ctx.Next()
	}, NewUserHandler(svc).HandleGetCurrentUser)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestUserHandler_HandleGetCurrentUser(t *testing.T) {
	t.Run("resolves the authenticated user", func(t *testing.T) {
		svc := &stubUserService{
			getFn: func(_ context.Context, id uint) (domain.User, error) {
				return domain.User{ID: id, Email: "marie@example.com", AssociationID: 1}, nil
			},
		}

		recorder := getCurrentUser(t, svc, 7)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":7`)
		assert.Contains(t, recorder.Body.String(), "marie@example.com")
	})

	t.Run("missing scope returns 401", func(t *testing.T) {
		svc := &stubUserService{
			getFn: func(context.Context, uint) (domain.User, error) {
				t.Fatal("service must not be called without a user scope")
				return domain.User{}, nil
			},
		}

		recorder := getCurrentUser(t, svc, 0)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("deleted user returns 404", func(t *testing.T) {
		svc := &stubUserService{
			getFn: func(context.Context, uint) (domain.User, error) {
				return domain.User{}, service.ErrUserNotFound
			},
		}

		recorder := getCurrentUser(t, svc, 7)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
