package registry

// NodeMetadata describes a node type.
type NodeMetadata struct {
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	ConfigSchema map[string]any `json:"configSchema,omitempty"`
	Since        string         `json:"since,omitempty"`
}
