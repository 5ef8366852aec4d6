package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	require.NoError(t, Load(t.TempDir()))
	cfg := GetConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Server.TokenTTL)
	assert.Equal(t, 5, cfg.Proctoring.NoFaceThreshold)
	assert.Equal(t, 10, cfg.Proctoring.LookAwayThreshold)
	assert.InDelta(t, 0.3, cfg.Proctoring.GazeDistance, 1e-9)
	assert.InDelta(t, 0.7, cfg.Proctoring.IdentityThreshold, 1e-9)
	assert.Equal(t, 3, cfg.Proctoring.MaxWarnings)
	assert.Equal(t, "AI Exam Platform", cfg.Certificate.Issuer)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, uint32(5), cfg.FaceRecognition.MaxFailures)
	assert.Equal(t, 10*time.Second, cfg.FaceRecognition.RetryInterval)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9000
proctoring:
  max_warnings: 5
kafka:
  enabled: true
  settings:
    host: kafka
    port: "9092"
    topic: proctoring
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("SERVER_SECRET_KEY", "from-env")
	t.Setenv("PROCTORING_IDENTITY_THRESHOLD", "0.8")

	require.NoError(t, Load(dir))
	cfg := GetConfig()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Server.SecretKey)
	assert.Equal(t, 5, cfg.Proctoring.MaxWarnings)
	assert.InDelta(t, 0.8, cfg.Proctoring.IdentityThreshold, 1e-9)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, "proctoring", cfg.Kafka.Settings["topic"])
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	assert.Error(t, Load(dir))
}
