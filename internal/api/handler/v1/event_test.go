package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type stubEventService struct {
	registerErr error
}

func (s *stubEventService) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	return event, nil
}

func (s *stubEventService) GetEventsByAssociation(context.Context, uint) ([]domain.Event, error) {
	return nil, nil
}

func (s *stubEventService) RegisterParticipant(_ context.Context, participant domain.EventParticipant) (domain.EventParticipant, error) {
	if s.registerErr != nil {
		return domain.EventParticipant{}, s.registerErr
	}

	participant.ID = 1
	return participant, nil
}

func (s *stubEventService) GetParticipants(context.Context, uint) ([]domain.EventParticipant, error) {
	return nil, nil
}

func registerParticipant(t *testing.T, svc EventService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/events/:eventID/participants", NewEventHandler(svc).HandleRegisterParticipant)

	req := httptest.NewRequest(http.MethodPost, "/events/3/participants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestEventHandler_HandleRegisterParticipant(t *testing.T) {
	body := `{"name":"Marie Dupont","email":"marie@example.com"}`

	t.Run("registration returns 201", func(t *testing.T) {
		recorder := registerParticipant(t, &stubEventService{}, body)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("full event returns 409", func(t *testing.T) {
		recorder := registerParticipant(t, &stubEventService{registerErr: service.ErrEventFull}, body)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "CONFLICT")
	})

	t.Run("unknown event returns 404", func(t *testing.T) {
		recorder := registerParticipant(t, &stubEventService{registerErr: service.ErrEventNotFound}, body)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		recorder := registerParticipant(t, &stubEventService{}, `{"name":"Marie Dupont"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
