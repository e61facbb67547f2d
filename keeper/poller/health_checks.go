package poller

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/parser"
)

const (
	categoryStorage  = "storage"
	categoryMemory   = "memory"
	categorySecurity = "security"
	categoryCPU      = "cpu"
)

// DefaultHealthChecks returns the diagnostic catalog for goos.
func DefaultHealthChecks(goos string, cfg config.HealthConfig) []HealthCheck {
	checks := []HealthCheck{diskCheck(cfg)}
	if goos == "darwin" {
		return append(checks,
			darwinMemoryCheck(cfg),
			darwinSwapCheck(cfg),
			textCheck(categorySecurity, "System Integrity Protection", domain.NewCommand("csrutil", "status"), "enabled", "SIP is enabled", "SIP is disabled"),
			textCheck(categorySecurity, "Gatekeeper", domain.NewCommand("spctl", "--status"), "assessments enabled", "Gatekeeper is enabled", "Gatekeeper is disabled"),
			textCheck(categorySecurity, "FileVault", domain.NewCommand("fdesetup", "status"), "FileVault is On", "FileVault is on", "FileVault is off"),
		)
	}
	return append(checks, linuxMemoryCheck(cfg), linuxSwapCheck(cfg), loadCheck(cfg, runtime.NumCPU()))
}

func thresholdStatus(freePercent, warn, fail float64) domain.HealthStatus {
	switch {
	case freePercent < fail:
		return domain.HealthFail
	case freePercent < warn:
		return domain.HealthWarning
	}
	return domain.HealthPass
}

func diskCheck(cfg config.HealthConfig) HealthCheck {
	return HealthCheck{
		Category: categoryStorage,
		Name:     "Disk space",
		Command:  domain.NewCommand("df", "-Pk", "/"),
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			df, err := parser.ParseDiskFree(stdout)
			if err != nil {
				return "", "", err
			}
			free := df.FreePercent()
			msg := fmt.Sprintf("%.1f%% free on %s (%s available)", free, df.Mount, formatBytes(df.AvailableKB*1024))
			return thresholdStatus(free, cfg.DiskWarnPercent, cfg.DiskFailPercent), msg, nil
		}),
	}
}

func darwinMemoryCheck(cfg config.HealthConfig) HealthCheck {
	return HealthCheck{
		Category: categoryMemory,
		Name:     "Memory pressure",
		Command:  domain.NewCommand("memory_pressure", "-Q"),
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			free, err := parser.ParseMemoryPressure(stdout)
			if err != nil {
				return "", "", err
			}
			return thresholdStatus(free, cfg.MemoryWarnPercent, cfg.MemoryFailPercent), fmt.Sprintf("%.0f%% memory free", free), nil
		}),
	}
}

func linuxMemoryCheck(cfg config.HealthConfig) HealthCheck {
	return HealthCheck{
		Category: categoryMemory,
		Name:     "Available memory",
		Command:  domain.NewCommand("cat", "/proc/meminfo"),
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			info := parser.ParseMeminfo(stdout)
			total, avail := info["MemTotal"], info["MemAvailable"]
			if total <= 0 {
				return "", "", fmt.Errorf("meminfo: MemTotal missing")
			}
			free := float64(avail) / float64(total) * 100
			msg := fmt.Sprintf("%.0f%% memory available (%s of %s)", free, formatBytes(avail*1024), formatBytes(total*1024))
			return thresholdStatus(free, cfg.MemoryWarnPercent, cfg.MemoryFailPercent), msg, nil
		}),
	}
}

func swapStatus(usedMB, warnMB float64) domain.HealthStatus {
	if warnMB > 0 && usedMB > warnMB {
		return domain.HealthWarning
	}
	return domain.HealthPass
}

func darwinSwapCheck(cfg config.HealthConfig) HealthCheck {
	return HealthCheck{
		Category: categoryMemory,
		Name:     "Swap usage",
		Command:  domain.NewCommand("sysctl", "-n", "vm.swapusage"),
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			usage, err := parser.ParseSwapUsage(stdout)
			if err != nil {
				return "", "", err
			}
			return swapStatus(usage.UsedMB, cfg.SwapWarnMB), fmt.Sprintf("%.0f MB of %.0f MB swap in use", usage.UsedMB, usage.TotalMB), nil
		}),
	}
}

func linuxSwapCheck(cfg config.HealthConfig) HealthCheck {
	return HealthCheck{
		Category: categoryMemory,
		Name:     "Swap usage",
		Command:  domain.NewCommand("cat", "/proc/meminfo"),
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			info := parser.ParseMeminfo(stdout)
			totalKB, ok := info["SwapTotal"]
			if !ok {
				return "", "", fmt.Errorf("meminfo: SwapTotal missing")
			}
			usedMB := float64(totalKB-info["SwapFree"]) / 1024
			return swapStatus(usedMB, cfg.SwapWarnMB), fmt.Sprintf("%.0f MB of %.0f MB swap in use", usedMB, float64(totalKB)/1024), nil
		}),
	}
}

func loadCheck(cfg config.HealthConfig, cpus int) HealthCheck {
	return HealthCheck{
		Category: categoryCPU,
		Name:     "Load average",
		Command:  domain.NewCommand("cat", "/proc/loadavg"),
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			load, err := parser.ParseLoadAverage(stdout)
			if err != nil {
				return "", "", err
			}
			status := domain.HealthPass
			if cpus > 0 && cfg.LoadWarnPerCPU > 0 && load/float64(cpus) > cfg.LoadWarnPerCPU {
				status = domain.HealthWarning
			}
			return status, fmt.Sprintf("1 minute load %.2f across %d CPUs", load, cpus), nil
		}),
	}
}

// textCheck passes when the output contains want, otherwise it warns.
func textCheck(category, name string, cmd domain.Command, want, passMsg, warnMsg string) HealthCheck {
	return HealthCheck{
		Category: category,
		Name:     name,
		Command:  cmd,
		Evaluate: graded(func(stdout string) (domain.HealthStatus, string, error) {
			if strings.Contains(stdout, want) {
				return domain.HealthPass, passMsg, nil
			}
			return domain.HealthWarning, warnMsg, nil
		}),
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
