package qrcode

import (
	"testing"

	"directory/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GenerateURLQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateURLQR("https://thephotographers.uk/directory/london-wedding-photographers/jane-smith-photography")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), len(pngMagic))
	assert.Equal(t, pngMagic, qrBytes[:len(pngMagic)])
}

func TestQRCodeService_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GenerateURLQR("https://example.com/directory")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_RejectsRelativeURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateURLQR("/directory/london-wedding-photographers/jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be absolute")
}

func TestNewFromConfig(t *testing.T) {
	svc := NewFromConfig(&config.Config{})
	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, impl.size)
	assert.Equal(t, qrcode.Medium, impl.errorCorrectionLevel)

	svc = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 0, ErrorCorrectionLevel: "H"}})
	impl, ok = svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, impl.size)
	assert.Equal(t, qrcode.Highest, impl.errorCorrectionLevel)
}
