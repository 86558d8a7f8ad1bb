package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/constants"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	mockUC "directory/internal/mocks/usecase"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushFixture struct {
	handler        *PushHandler
	reconciliation *mockUC.MockReconciliationUsecase
	admin          *mockUC.MockAdminUsecase
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	reconciliation := mockUC.NewMockReconciliationUsecase(t)
	admin := mockUC.NewMockAdminUsecase(t)

	return &pushFixture{
		handler: NewPushHandler(PushHandlerParams{
			Config:         &config.Config{},
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			Reconciliation: reconciliation,
			Admin:          admin,
		}),
		reconciliation: reconciliation,
		admin:          admin,
	}
}

func pushBody(t *testing.T, event any, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/test/subscriptions/directory-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func (f *pushFixture) push(t *testing.T, body []byte, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()

	err := f.handler.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func TestPushHandler_EntitlementUpdated(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()
	periodEnd := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	f.reconciliation.EXPECT().
		ApplyEntitlementChange(mock.Anything, mock.MatchedBy(func(change usecase.EntitlementChange) bool {
			return change.UserID == userID &&
				change.PlanID == "pro-monthly" &&
				change.Status == entity.EntitlementActive &&
				change.CurrentPeriodEnd != nil && change.CurrentPeriodEnd.Equal(periodEnd)
		})).
		Return(&usecase.SweepResult{Job: usecase.JobReconcileUser, Scanned: 1, Transitioned: 1}, nil)

	rec := f.push(t, pushBody(t, DirectoryEvent{
		Type:             constants.EventEntitlementUpdated,
		UserID:           userID.String(),
		PlanID:           "pro-monthly",
		Status:           string(entity.EntitlementActive),
		CurrentPeriodEnd: &periodEnd,
	}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_EntitlementUpdated_PartialFailureRetries(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()

	f.reconciliation.EXPECT().
		ApplyEntitlementChange(mock.Anything, mock.Anything).
		Return(&usecase.SweepResult{Job: usecase.JobReconcileUser, Scanned: 2, Transitioned: 1, Failed: 1}, nil)

	rec := f.push(t, pushBody(t, DirectoryEvent{
		Type:   constants.EventEntitlementUpdated,
		UserID: userID.String(),
		Status: string(entity.EntitlementCanceled),
	}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_EntitlementUpdated_InvalidChangeIsDropped(t *testing.T) {
	f := newPushFixture(t)

	f.reconciliation.EXPECT().
		ApplyEntitlementChange(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "status", Message: "is invalid"}))

	rec := f.push(t, pushBody(t, DirectoryEvent{
		Type:   constants.EventEntitlementUpdated,
		UserID: uuid.NewString(),
		Status: "bogus",
	}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UserDeleted(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()

	f.admin.EXPECT().RemoveUserListings(mock.Anything, userID).Return(int64(1), nil)

	rec := f.push(t, pushBody(t, DirectoryEvent{
		Type:   constants.EventUserDeleted,
		UserID: userID.String(),
	}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UserDeleted_StoreFailureRetries(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()

	f.admin.EXPECT().RemoveUserListings(mock.Anything, userID).Return(int64(0), errors.New("connection reset"))

	rec := f.push(t, pushBody(t, DirectoryEvent{
		Type:   constants.EventUserDeleted,
		UserID: userID.String(),
	}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_RequestIDFromAttributes(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()

	f.admin.EXPECT().
		RemoveUserListings(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attributes" &&
				deliverycontext.GetLogger(ctx) != nil
		}), userID).
		Return(int64(0), nil)

	rec := f.push(t, pushBody(t, DirectoryEvent{
		RequestID: "req-from-event",
		Type:      constants.EventUserDeleted,
		UserID:    userID.String(),
	}, map[string]string{"request_id": "req-from-attributes"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DroppedEvents(t *testing.T) {
	tests := []struct {
		name  string
		event DirectoryEvent
	}{
		{
			name:  "unknown type",
			event: DirectoryEvent{Type: "listing.viewed", UserID: uuid.NewString()},
		},
		{
			name:  "invalid user id",
			event: DirectoryEvent{Type: constants.EventUserDeleted, UserID: "not-a-uuid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t)

			rec := f.push(t, pushBody(t, tt.event, nil), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	f := newPushFixture(t)

	var msg PubSubMessage
	msg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := f.push(t, body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{not json"))
	body, err = json.Marshal(msg)
	require.NoError(t, err)

	rec = f.push(t, body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	userID := uuid.New()
	body := func(t *testing.T) []byte {
		return pushBody(t, DirectoryEvent{Type: constants.EventUserDeleted, UserID: userID.String()}, nil)
	}

	t.Run("missing header", func(t *testing.T) {
		f := newPushFixture(t)
		f.handler.verifyPushAuth = true
		f.handler.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			t.Fatal("verifier must not be called without a token")

			return nil, nil
		}

		rec := f.push(t, body(t), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		f := newPushFixture(t)
		f.handler.verifyPushAuth = true
		f.handler.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://example.com"}, nil
		}

		rec := f.push(t, body(t), http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := newPushFixture(t)
		f.handler.verifyPushAuth = true
		f.handler.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return nil, errors.New("token expired")
		}

		rec := f.push(t, body(t), http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token, audience from request url", func(t *testing.T) {
		f := newPushFixture(t)
		f.handler.verifyPushAuth = true

		var gotToken, gotAudience string
		f.handler.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			gotToken, gotAudience = token, audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		f.admin.EXPECT().RemoveUserListings(mock.Anything, userID).Return(int64(0), nil)

		rec := f.push(t, body(t), http.Header{"Authorization": {"Bearer signed-token"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signed-token", gotToken)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})

	t.Run("configured audience", func(t *testing.T) {
		f := newPushFixture(t)
		f.handler.verifyPushAuth = true
		f.handler.audience = "https://worker.thephotographers.uk/push"

		var gotAudience string
		f.handler.verify = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
		}
		f.admin.EXPECT().RemoveUserListings(mock.Anything, userID).Return(int64(0), nil)

		rec := f.push(t, body(t), http.Header{"Authorization": {"Bearer signed-token"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.thephotographers.uk/push", gotAudience)
	})
}

func TestNewPushHandler_VerificationByEnvironment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = constants.EnvDevelop
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.False(t, h.verifyPushAuth)
}
