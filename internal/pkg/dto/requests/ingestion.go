package requests

type IngestionNotification struct {
	OutputPath  string `json:"output_path"`
	ObjectName  string `json:"object_name,omitempty"`
	RecordCount int    `json:"record_count"`
	CompletedAt string `json:"completed_at"`
}
