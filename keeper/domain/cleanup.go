package domain

type DiskUsage struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// CleanupCategory is one recipe of the cleanup catalog. A category either removes Paths
// (globs, "~" expanded) or runs Command.
type CleanupCategory struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Paths       []string `json:"paths,omitempty"`
	Command     []string `json:"command,omitempty"`
	Privileged  bool     `json:"privileged"`
}

type CleanupEstimate struct {
	Category   string      `json:"category"`
	Items      []DiskUsage `json:"items"`
	TotalBytes int64       `json:"total_bytes"`
}

type CleanupFailure struct {
	Target string `json:"target"`
	Reason string `json:"reason"`
}

type CleanupOutcome struct {
	Category     string           `json:"category"`
	ItemsRemoved int              `json:"items_removed"`
	BytesFreed   int64            `json:"bytes_freed"`
	Failures     []CleanupFailure `json:"failures,omitempty"`
}
