package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/constants"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DirectoryEvent is a billing or account event relevant to the directory
type DirectoryEvent struct {
	RequestID        string     `json:"request_id,omitempty"`
	Type             string     `json:"type"`
	UserID           string     `json:"user_id"`
	PlanID           string     `json:"plan_id,omitempty"`
	Status           string     `json:"status,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// tokenVerifier validates a Pub/Sub push OIDC token for an audience
type tokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying directory events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         tokenVerifier
	logger         *slog.Logger
	reconciliation usecase.ReconciliationUsecase
	admin          usecase.AdminUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	Reconciliation usecase.ReconciliationUsecase
	Admin          usecase.AdminUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if params.Config.Worker != nil {
		audience = params.Config.Worker.Audience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verify:         idtoken.Validate,
		logger:         params.Logger,
		reconciliation: params.Reconciliation,
		admin:          params.Admin,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event DirectoryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse directory event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, h.extractRequestID(ctx, &pushMsg, &event),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	reqLogger.Info("[Worker] Processing directory event",
		slog.String("type", event.Type),
		slog.String("user_id", event.UserID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process directory event",
			slog.String("type", event.Type),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Directory event processed", slog.String("type", event.Type))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or the incoming request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *DirectoryEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}

// processEvent dispatches on the event type. Malformed events are dropped,
// store failures are retried.
func (h *PushHandler) processEvent(ctx context.Context, event *DirectoryEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(err, "invalid user_id %q", event.UserID)
	}

	switch event.Type {
	case constants.EventEntitlementUpdated:
		result, err := h.reconciliation.ApplyEntitlementChange(ctx, usecase.EntitlementChange{
			UserID:           userID,
			PlanID:           event.PlanID,
			Status:           entity.EntitlementStatus(event.Status),
			CurrentPeriodEnd: event.CurrentPeriodEnd,
		})
		if err != nil {
			return classify(err)
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Entitlement applied",
			slog.Int("transitioned", result.Transitioned),
			slog.Int("failed", result.Failed),
		)
		if result.Failed > 0 {
			return newRetryableError(errors.Errorf("%d listings failed to reconcile", result.Failed))
		}

		return nil

	case constants.EventUserDeleted:
		deleted, err := h.admin.RemoveUserListings(ctx, userID)
		if err != nil {
			return classify(err)
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] User listings removed",
			slog.Int64("deleted", deleted),
		)

		return nil

	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Ignoring unknown event type",
			slog.String("type", event.Type),
		)

		return nil
	}
}

// classify marks every error except invalid input as retryable.
func classify(err error) error {
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return err
	}

	return newRetryableError(err)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience, expect the URL of this endpoint
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.verify(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
