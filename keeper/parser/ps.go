package parser

import (
	"path"
	"strconv"
	"strings"

	"github.com/hostkeeper/keeper/keeper/domain"
)

// ProcessListArgs is the ps invocation ParseProcessList understands: user, pid, cpu%, rss in KB,
// command path. The trailing "=" suppresses the header.
var ProcessListArgs = []string{"-A", "-o", "user=,pid=,%cpu=,rss=,comm="}

// ProcessListEnv pins ps to the C locale so %cpu uses a decimal point.
var ProcessListEnv = []string{"LC_ALL=C"}

// ParseProcessList parses one ps listing. Lines with fewer than five columns, unparsable numbers or
// a pid already seen are skipped.
func ParseProcessList(text string, classifier domain.Classifier) ([]domain.ProcessRecord, domain.ParseReport) {
	var r reporter
	records := []domain.ProcessRecord{}
	seen := map[int]struct{}{}

	for i, raw := range lines(text) {
		line := strings.TrimSpace(raw)
		if line == "" || isProcessHeader(line) {
			continue
		}
		r.line()
		cols := splitColumns(line, 5)
		if len(cols) < 5 {
			r.skip(i+1, line, "expected 5 columns")
			continue
		}
		pid, err := strconv.Atoi(cols[1])
		if err != nil || pid < 0 {
			r.skip(i+1, line, "invalid pid")
			continue
		}
		cpu, err := strconv.ParseFloat(strings.Replace(cols[2], ",", ".", 1), 64)
		if err != nil {
			r.skip(i+1, line, "invalid cpu percent")
			continue
		}
		rssKB, err := strconv.ParseInt(cols[3], 10, 64)
		if err != nil || rssKB < 0 {
			r.skip(i+1, line, "invalid resident memory")
			continue
		}
		if _, dup := seen[pid]; dup {
			r.skip(i+1, line, "duplicate pid")
			continue
		}
		seen[pid] = struct{}{}

		command := cols[4]
		name := path.Base(command)
		records = append(records, domain.ProcessRecord{
			PID:        pid,
			Name:       name,
			Command:    command,
			User:       cols[0],
			CPUPercent: cpu,
			MemoryMB:   float64(rssKB) / 1024,
			System:     classifier.IsSystem(cols[0], name),
		})
	}
	return records, r.report
}

func isProcessHeader(line string) bool {
	cols := strings.Fields(line)
	return len(cols) >= 2 && cols[0] == "USER" && cols[1] == "PID"
}
