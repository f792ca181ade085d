package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldClientIP  = "client_ip"
	FieldServerIP  = "server_ip"
	FieldWindowKey = "window_key"
	FieldIface     = "iface"
	FieldSource    = "source"
	FieldAttempt   = "attempt"
	FieldBackoff   = "backoff"
	FieldPackets   = "packets"
)
