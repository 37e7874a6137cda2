package architect

import (
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// AutoFix applies one best-effort repair pass over the reported issues. It
// only fills missing responsibilities and missing types; it never removes or
// renames components and never touches relationship or pattern issues.
// There is no fixed-point iteration: issues still present after this single
// pass are only logged by the caller.
func AutoFix(arch *schemas.Architecture, issues []string, logger *zap.Logger) {
	for _, issue := range issues {
		switch {
		case strings.Contains(issue, "has no responsibilities"):
			name := componentNameFromIssue(issue)
			if c := arch.ComponentByName(name); c != nil {
				c.Responsibilities = []string{"Handle " + c.Type + " operations"}
				logger.Debug("Filled missing responsibilities.", zap.String("component", name))
			}
		case strings.Contains(issue, "has no type"):
			name := componentNameFromIssue(issue)
			if c := arch.ComponentByName(name); c != nil {
				c.Type = "service"
				logger.Debug("Defaulted missing type to service.", zap.String("component", name))
			}
		}
	}
}

// componentNameFromIssue pulls the component name out of issue strings of
// the shape "Component <name> has no ...".
func componentNameFromIssue(issue string) string {
	fields := strings.Fields(issue)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
