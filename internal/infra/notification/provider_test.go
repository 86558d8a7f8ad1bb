package notification

import (
	"io"
	"log/slog"
	"testing"

	"directory/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(cfg *config.Config) Params {
	return Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewNotificationService_DefaultsToNoop(t *testing.T) {
	svc, err := NewNotificationService(testParams(&config.Config{}))
	require.NoError(t, err)

	assert.IsType(t, &noopService{}, svc)
	assert.NoError(t, svc.SendToUser(t.Context(), uuid.New(), "title", "body", nil))
}

func TestNewNotificationService_FirebaseRequiresConfig(t *testing.T) {
	cfg := &config.Config{
		Notification: &config.NotificationConfig{Provider: config.NotificationProviderFirebase},
	}

	_, err := NewNotificationService(testParams(cfg))
	assert.Error(t, err)
}

func TestNewNotificationService_UnknownProvider(t *testing.T) {
	cfg := &config.Config{
		Notification: &config.NotificationConfig{Provider: "carrier-pigeon"},
	}

	_, err := NewNotificationService(testParams(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestUserTopic(t *testing.T) {
	id := uuid.MustParse("0190c1a0-0000-7000-8000-000000000001")
	assert.Equal(t, "user-0190c1a0-0000-7000-8000-000000000001", UserTopic(id))
}
