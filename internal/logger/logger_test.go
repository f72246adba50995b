package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAdsLogger_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ads.log")
	log := NewAdsLogger(configs.LoggerConfig{Level: "warn", File: file, Rotation: configs.RotationConfig{MaxSize: 1}})
	log.Info("skipped below level")
	log.Warn("queue is full", zap.Int("size", 10))
	log.Sync()
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "queue is full", entry["msg"])
	require.Equal(t, "Ads-Service", entry["service"])
	require.Equal(t, float64(10), entry["size"])
}
func TestNewAdsLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ads.log")
	log := NewAdsLogger(configs.LoggerConfig{Level: "loud", File: file})
	log.Info("started")
	log.Sync()
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"started"`)
}
