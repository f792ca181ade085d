package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
monitor:
  server_ip: 10.50.0.10
  window_seconds: 10
  retention_seconds: 120
capture:
  mode: live
  iface: eth0
  bpf_filter: "host 10.50.0.10"
stream:
  partitions: 4
  buffer: 256
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "10.50.0.10", cfg.Monitor.ServerIP)
	assert.Equal(t, 10, cfg.Monitor.WindowSeconds)
	assert.Equal(t, 120, cfg.Monitor.RetentionSeconds)
	assert.Equal(t, "live", cfg.Capture.Mode)
	assert.Equal(t, "eth0", cfg.Capture.Iface)
	assert.Equal(t, "host 10.50.0.10", cfg.Capture.BPFFilter)
	assert.Equal(t, 4, cfg.Stream.Partitions)
	assert.Equal(t, 256, cfg.Stream.Buffer)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `monitor:
  server_ip: 10.50.0.10
capture:
  iface: eth0
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Monitor.WindowSeconds)
	assert.Equal(t, 300, cfg.Monitor.RetentionSeconds)
	assert.Equal(t, "live", cfg.Capture.Mode)
	assert.Equal(t, 1600, cfg.Capture.SnapshotLen)
	assert.True(t, cfg.Capture.Promiscuous)
	assert.Equal(t, 1, cfg.Capture.BackoffInitial)
	assert.Equal(t, 30, cfg.Capture.BackoffMax)
	assert.Equal(t, 8, cfg.Stream.Partitions)
	assert.Equal(t, 1024, cfg.Stream.Buffer)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TRAFFIC_MONITOR_SERVER_IP", "192.168.1.1")
	t.Setenv("TRAFFIC_MONITOR_WINDOW_SECONDS", "15")
	t.Setenv("TRAFFIC_CAPTURE_IFACE", "wlan0")

	path := writeConfig(t, `monitor:
  server_ip: 10.50.0.10
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", cfg.Monitor.ServerIP)
	assert.Equal(t, 15, cfg.Monitor.WindowSeconds)
	assert.Equal(t, "wlan0", cfg.Capture.Iface)
}

func TestLoadConfig_MissingServerIP(t *testing.T) {
	path := writeConfig(t, `capture:
  iface: eth0
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "monitor.serverip (required)")
}

func TestLoadConfig_InvalidServerIP(t *testing.T) {
	path := writeConfig(t, `monitor:
  server_ip: not-an-ip
capture:
  iface: eth0
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monitor.serverip (ip)")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeConfig(t, `server:
  port: 70000
monitor:
  server_ip: 10.50.0.10
capture:
  iface: eth0
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port (max=65535)")
}

func TestLoadConfig_FileModeRequiresPcapFile(t *testing.T) {
	path := writeConfig(t, `monitor:
  server_ip: 10.50.0.10
capture:
  mode: file
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture.pcapfile (required when Mode file)")
}

func TestLoadConfig_InvalidCaptureMode(t *testing.T) {
	path := writeConfig(t, `monitor:
  server_ip: 10.50.0.10
capture:
  mode: tap
  iface: eth0
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture.mode (oneof=live file)")
}

func TestLoadConfig_MissingFileStorageRootDir(t *testing.T) {
	path := writeConfig(t, `monitor:
  server_ip: 10.50.0.10
capture:
  iface: eth0
file_storage: {}
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filestorage.rootdir")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
