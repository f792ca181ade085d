package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Monitor     MonitorConfig     `mapstructure:"monitor" validate:"required"`
	Capture     CaptureConfig     `mapstructure:"capture" validate:"required"`
	Stream      StreamConfig      `mapstructure:"stream" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MonitorConfig describes the designated server and the tumbling windows kept for it.
type MonitorConfig struct {
	ServerIP         string `mapstructure:"server_ip" validate:"required,ip"`
	WindowSeconds    int    `mapstructure:"window_seconds" validate:"required,min=1"`
	RetentionSeconds int    `mapstructure:"retention_seconds" validate:"required,min=1"`
}

// CaptureConfig selects the packet source.
type CaptureConfig struct {
	Mode           string `mapstructure:"mode" validate:"required,oneof=live file"`
	Iface          string `mapstructure:"iface" validate:"required_if=Mode live"`
	PcapFile       string `mapstructure:"pcap_file" validate:"required_if=Mode file"`
	SnapshotLen    int    `mapstructure:"snapshot_len" validate:"required,min=64,max=262144"`
	Promiscuous    bool   `mapstructure:"promiscuous"`
	BPFFilter      string `mapstructure:"bpf_filter"`
	BackoffInitial int    `mapstructure:"backoff_initial" validate:"required,min=1"` // seconds
	BackoffMax     int    `mapstructure:"backoff_max" validate:"required,gtefield=BackoffInitial"`
}

// StreamConfig sizes the partitioned packet stream between capture and aggregation.
type StreamConfig struct {
	Partitions int `mapstructure:"partitions" validate:"required,min=1,max=256"`
	Buffer     int `mapstructure:"buffer" validate:"required,min=1"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}
