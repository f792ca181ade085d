package configs

import (
	"fmt"
	"strings"

	"traffic-dashboard/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TRAFFIC_MONITOR_SERVER_IP.
const EnvPrefix = "TRAFFIC"

var defaults = map[string]any{
	"server.port":                8000,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       10,
	"server.idle_timeout":        60,
	"log.level":                  "info",
	"monitor.window_seconds":     5,
	"monitor.retention_seconds":  300,
	"capture.mode":               "live",
	"capture.snapshot_len":       1600,
	"capture.promiscuous":        true,
	"capture.bpf_filter":         "",
	"capture.backoff_initial":    1,
	"capture.backoff_max":        30,
	"stream.partitions":          8,
	"stream.buffer":              1024,
}

// envOnly keys have no default but can still be supplied from the environment.
var envOnly = []string{
	"monitor.server_ip",
	"capture.iface",
	"capture.pcap_file",
	"file_storage.root_dir",
}

// LoadConfig reads configuration from file, applies defaults and environment
// overrides, and validates the result.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envOnly {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Monitor.ServerIP" -> "monitor.serverip"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "required_if":
		return fmt.Sprintf("%s (required when %s)", field, e.Param())
	case "min", "max", "oneof", "gtefield":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
