package models

import "encoding/json"

// JSONDataRequest is a JSON document a client pushes to the dashboard, typically
// after moving it over FTP so that the transfer shows up in the traffic charts.
//
// Example JSON:
//
//	{
//	  "client_id": "client4",
//	  "timestamp": 1735409000,
//	  "data_type": "sensor_reading",
//	  "payload": {"temperature": 21.5, "humidity": 40},
//	  "file_size": 2048
//	}
type JSONDataRequest struct {
	ClientID  string                     `json:"client_id" validate:"required,max=128,excludesall=/\\,ne=.,ne=.."`
	Timestamp int64                      `json:"timestamp" validate:"required,gt=0"`
	DataType  string                     `json:"data_type" validate:"required,max=64"`
	Payload   map[string]json.RawMessage `json:"payload" validate:"required"`
	FileSize  int64                      `json:"file_size" validate:"min=0"`
}

// JSONDataResponse acknowledges a stored JSON document.
type JSONDataResponse struct {
	Received    bool   `json:"received"`
	ProcessedAt int64  `json:"processed_at"`
	ClientID    string `json:"client_id"`
	FileSize    int64  `json:"file_size"`
	Message     string `json:"message"`
	TransferID  string `json:"transfer_id"`
}

// JSONDataRecord is the stored form of an accepted request.
type JSONDataRecord struct {
	TransferID  string          `json:"transfer_id"`
	ReceivedAt  int64           `json:"received_at"`
	Request     JSONDataRequest `json:"request"`
	StoredBytes int64           `json:"stored_bytes"`
}
