package domain

type HealthStatus string

const (
	HealthPass    HealthStatus = "pass"
	HealthWarning HealthStatus = "warning"
	HealthFail    HealthStatus = "fail"
	HealthInfo    HealthStatus = "info"
)

type HealthCheckResult struct {
	Category string       `json:"category"`
	Name     string       `json:"name"`
	Status   HealthStatus `json:"status"`
	Message  string       `json:"message"`
	Detail   string       `json:"detail,omitempty"`
}
