package types

type MessageType string

const (
	ConnectionStatusMessage MessageType = "CONNECTION_STATUS"
	SchemaMessage           MessageType = "SCHEMA"
)

type ConnectionStatus string

const (
	ConnectionSucceed ConnectionStatus = "SUCCEEDED"
	ConnectionFailed  ConnectionStatus = "FAILED"
)

type StatusRow struct {
	Status  ConnectionStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}

// Message is the envelope emitted by CLI commands on stdout.
type Message struct {
	Type             MessageType `json:"type"`
	ConnectionStatus *StatusRow  `json:"connectionStatus,omitempty"`
	Table            string      `json:"table,omitempty"`
	Columns          []Column    `json:"columns,omitempty"`
}
