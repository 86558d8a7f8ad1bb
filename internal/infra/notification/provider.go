package notification

import (
	"context"
	"log/slog"

	"directory/config"
	"directory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopService logs notifications instead of sending them
type noopService struct {
	logger *slog.Logger
}

// NewNoopService returns a NotificationService that only logs.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) SendToUser(ctx context.Context, userID uuid.UUID, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopNotification] Push disabled, skipping",
		slog.String("user_id", userID.String()),
		slog.String("title", title),
	)

	return nil
}

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration
func NewNotificationService(params Params) (service.NotificationService, error) {
	provider := config.NotificationProviderNone
	if params.Config.Notification != nil && params.Config.Notification.Provider != "" {
		provider = params.Config.Notification.Provider
	}

	switch provider {
	case config.NotificationProviderNone:
		params.Logger.Info("Push notifications disabled, using no-op service")

		return NewNoopService(params.Logger), nil

	case config.NotificationProviderFirebase:
		if params.Config.Firebase == nil {
			return nil, errors.New("firebase configuration is required for firebase provider")
		}
		params.Logger.Info("Using Firebase push notifications",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFirebaseService(params.Ctx, params.Config.Firebase.ProjectID, params.Config.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
