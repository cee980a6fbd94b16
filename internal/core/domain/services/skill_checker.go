package services

import (
	"fmt"
	"strings"

	"fieldops/internal/core/domain/model/location"
	"fieldops/internal/core/domain/model/worker"
)

// SkillChecker compares a worker's skill set against a location's declared
// requirements. A location with no declared requirements never produces
// warnings: absence of data is "no constraint".
type SkillChecker struct{}

// NewSkillChecker creates a SkillChecker.
func NewSkillChecker() *SkillChecker {
	return &SkillChecker{}
}

// Check returns at most two warnings: one for missing required skills and one
// for missing preferred skills, each listing the missing skill names in the
// location's declaration order.
func (c *SkillChecker) Check(w *worker.Worker, l *location.Location) []Warning {
	var warnings []Warning

	if missing := w.MissingSkills(l.RequiredSkills()); len(missing) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningSkillMismatch,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("worker lacks required skills: %s", strings.Join(missing, ", ")),
			Details:  SkillMismatchDetails{MissingSkills: missing, Required: true},
		})
	}

	if missing := w.MissingSkills(l.PreferredSkills()); len(missing) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningSkillMismatch,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("worker lacks preferred skills: %s", strings.Join(missing, ", ")),
			Details:  SkillMismatchDetails{MissingSkills: missing, Required: false},
		})
	}

	return warnings
}
