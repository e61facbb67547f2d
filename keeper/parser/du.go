package parser

import (
	"strconv"
	"strings"

	"github.com/hostkeeper/keeper/keeper/domain"
)

// ParseDiskUsage parses "du -sk" output: a size in kilobytes, then the path.
func ParseDiskUsage(text string) ([]domain.DiskUsage, domain.ParseReport) {
	var r reporter
	usages := []domain.DiskUsage{}
	for i, raw := range lines(text) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r.line()
		var cols []string
		if size, p, ok := strings.Cut(line, "\t"); ok {
			cols = []string{strings.TrimSpace(size), p}
		} else {
			cols = splitColumns(line, 2)
		}
		if len(cols) != 2 || cols[1] == "" {
			r.skip(i+1, line, "expected size and path")
			continue
		}
		kb, err := strconv.ParseInt(cols[0], 10, 64)
		if err != nil || kb < 0 {
			r.skip(i+1, line, "invalid size")
			continue
		}
		usages = append(usages, domain.DiskUsage{Path: cols[1], Bytes: kb * 1024})
	}
	return usages, r.report
}
