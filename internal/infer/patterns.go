package infer

import (
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// Pattern is one entry of the architectural pattern library. Requirements
// name predicates checked by the validator against the current architecture.
type Pattern struct {
	Description   string
	Components    []schemas.Component
	Relationships []schemas.Relationship
	Requirements  []string
}

// PatternLibrary returns the static pattern catalog.
func PatternLibrary() map[string]Pattern {
	return map[string]Pattern{
		"layered": {
			Description: "Layered architecture pattern",
			Components: []schemas.Component{
				{Name: "PresentationLayer", Type: "layer", Responsibilities: []string{"UI handling"}},
				{Name: "BusinessLayer", Type: "layer", Responsibilities: []string{"Business logic"}},
				{Name: "DataLayer", Type: "layer", Responsibilities: []string{"Data access"}},
			},
			Relationships: []schemas.Relationship{
				{Source: "PresentationLayer", Target: "BusinessLayer", Type: "depends_on"},
				{Source: "BusinessLayer", Target: "DataLayer", Type: "depends_on"},
			},
			Requirements: []string{"clear_separation_of_concerns"},
		},
		"microservices": {
			Description: "Microservices architecture pattern",
			Components: []schemas.Component{
				{Name: "APIGateway", Type: "api_gateway", Responsibilities: []string{"Request routing"}},
				{Name: "ServiceRegistry", Type: "registry", Responsibilities: []string{"Service discovery"}},
			},
			Requirements: []string{"service_independence", "distributed_deployment"},
		},
		"mvc": {
			Description: "Model-View-Controller pattern",
			Components: []schemas.Component{
				{Name: "Model", Type: "model", Responsibilities: []string{"Data management"}},
				{Name: "View", Type: "view", Responsibilities: []string{"UI presentation"}},
				{Name: "Controller", Type: "controller", Responsibilities: []string{"Request handling"}},
			},
			Relationships: []schemas.Relationship{
				{Source: "Controller", Target: "Model", Type: "uses"},
				{Source: "Controller", Target: "View", Type: "updates"},
				{Source: "View", Target: "Model", Type: "observes"},
			},
			Requirements: []string{"clear_mvc_separation"},
		},
		"event_driven": {
			Description: "Event-driven architecture pattern",
			Components: []schemas.Component{
				{Name: "EventBus", Type: "event_bus", Responsibilities: []string{"Event routing"}},
				{Name: "EventStore", Type: "storage", Responsibilities: []string{"Event persistence"}},
			},
			Requirements: []string{"event_based_communication"},
		},
	}
}

// CheckPatternRequirement evaluates one named pattern predicate against the
// architecture. Unknown predicates pass.
func CheckPatternRequirement(arch *schemas.Architecture, requirement string) bool {
	switch requirement {
	case "clear_separation_of_concerns":
		return len(arch.Components) >= 3
	case "service_independence":
		return len(arch.ComponentsByType("service")) >= 2
	case "distributed_deployment":
		return strings.Contains(strings.ToLower(arch.DeploymentModel), "microservices")
	case "clear_mvc_separation":
		types := map[string]bool{}
		for _, c := range arch.Components {
			types[c.Type] = true
		}
		return types["model"] && types["view"] && types["controller"]
	case "event_based_communication":
		for _, c := range arch.Components {
			if strings.Contains(c.Type, "event") {
				return true
			}
		}
		return false
	}
	return true
}
