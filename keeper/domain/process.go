package domain

import "strings"

const DefaultHeavyProcessThresholdMB = 500

type ProcessRecord struct {
	PID        int     `json:"pid"`
	Name       string  `json:"name"`
	Command    string  `json:"command"`
	User       string  `json:"user"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMB   float64 `json:"memory_mb"`
	System     bool    `json:"system"`
}

func (p ProcessRecord) IsHeavy(thresholdMB float64) bool {
	return p.MemoryMB > thresholdMB
}

// Classifier decides whether a process belongs to the operating system.
type Classifier struct {
	SuperUser            string
	ReservedUserPrefixes []string
	VendorNamespaces     []string
}

func DefaultClassifier() Classifier {
	return Classifier{
		SuperUser:            "root",
		ReservedUserPrefixes: []string{"_"},
		VendorNamespaces:     []string{"com.apple."},
	}
}

// IsSystem reports true for the super user, for reserved service accounts and for processes
// whose display name sits in a vendor namespace.
func (c Classifier) IsSystem(user, name string) bool {
	if c.SuperUser != "" && user == c.SuperUser {
		return true
	}
	for _, prefix := range c.ReservedUserPrefixes {
		if prefix != "" && strings.HasPrefix(user, prefix) {
			return true
		}
	}
	for _, ns := range c.VendorNamespaces {
		if ns != "" && strings.HasPrefix(name, ns) {
			return true
		}
	}
	return false
}
