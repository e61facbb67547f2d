package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type DiskFree struct {
	Mount       string
	TotalKB     int64
	AvailableKB int64
}

func (d DiskFree) FreePercent() float64 {
	if d.TotalKB <= 0 {
		return 0
	}
	return float64(d.AvailableKB) / float64(d.TotalKB) * 100
}

// ParseDiskFree reads the last data row of "df -Pk". Columns are taken from the right because
// device names may contain spaces.
func ParseDiskFree(text string) (DiskFree, error) {
	var row []string
	for _, raw := range lines(text) {
		cols := strings.Fields(raw)
		if len(cols) < 6 || cols[0] == "Filesystem" {
			continue
		}
		row = cols
	}
	if row == nil {
		return DiskFree{}, fmt.Errorf("df: no data row in %q", strings.TrimSpace(text))
	}
	n := len(row)
	total, err := strconv.ParseInt(row[n-5], 10, 64)
	if err != nil {
		return DiskFree{}, fmt.Errorf("df: invalid total %q", row[n-5])
	}
	avail, err := strconv.ParseInt(row[n-3], 10, 64)
	if err != nil {
		return DiskFree{}, fmt.Errorf("df: invalid available %q", row[n-3])
	}
	return DiskFree{Mount: row[n-1], TotalKB: total, AvailableKB: avail}, nil
}

var memoryFreeRe = regexp.MustCompile(`free percentage:\s*(\d+(?:\.\d+)?)%`)

// ParseMemoryPressure extracts the free percentage from "memory_pressure -Q".
func ParseMemoryPressure(text string) (float64, error) {
	m := memoryFreeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("memory_pressure: free percentage not found")
	}
	return strconv.ParseFloat(m[1], 64)
}

// ParseMeminfo reads /proc/meminfo into kilobyte values keyed by field name.
func ParseMeminfo(text string) map[string]int64 {
	out := map[string]int64{}
	for _, raw := range lines(text) {
		key, rest, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		cols := strings.Fields(rest)
		if len(cols) == 0 {
			continue
		}
		v, err := strconv.ParseInt(cols[0], 10, 64)
		if err != nil {
			continue
		}
		out[strings.TrimSpace(key)] = v
	}
	return out
}

type SwapUsage struct {
	TotalMB float64
	UsedMB  float64
}

var swapRe = regexp.MustCompile(`(total|used|free)\s*=\s*([\d.]+)([KMG])`)

// ParseSwapUsage reads "sysctl -n vm.swapusage".
func ParseSwapUsage(text string) (SwapUsage, error) {
	var usage SwapUsage
	matches := swapRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return usage, fmt.Errorf("vm.swapusage: no values in %q", strings.TrimSpace(text))
	}
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return usage, fmt.Errorf("vm.swapusage: invalid %s %q", m[1], m[2])
		}
		switch m[3] {
		case "K":
			v /= 1024
		case "G":
			v *= 1024
		}
		switch m[1] {
		case "total":
			usage.TotalMB = v
		case "used":
			usage.UsedMB = v
		}
	}
	return usage, nil
}

// ParseLoadAverage returns the one minute load from /proc/loadavg or "sysctl -n vm.loadavg".
func ParseLoadAverage(text string) (float64, error) {
	cols := strings.Fields(strings.Trim(strings.TrimSpace(text), "{}"))
	if len(cols) == 0 {
		return 0, fmt.Errorf("loadavg: empty")
	}
	return strconv.ParseFloat(cols[0], 64)
}
