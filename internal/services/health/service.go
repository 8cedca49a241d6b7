package health

// ToolChecker reports whether the lint tool can be launched.
type ToolChecker interface {
	Available() bool
}

// Status is the health payload.
type Status struct {
	OK       bool   `json:"ok"`
	LintTool bool   `json:"lint_tool"`
	Model    string `json:"model"`
}

// Service encapsulates health-related checks.
type Service struct {
	Lint  ToolChecker
	Model string
}

// NewService constructs a new health service.
func NewService(lint ToolChecker, model string) *Service {
	return &Service{Lint: lint, Model: model}
}

// Status reports liveness. A missing lint tool does not make the service
// unhealthy because reviews degrade to an empty lint list.
func (s *Service) Status() Status {
	status := Status{OK: true, Model: s.Model}
	if s.Lint != nil {
		status.LintTool = s.Lint.Available()
	}
	return status
}
