// Package infer derives a system architecture from extracted requirements
// using static component templates, adjacency rules and keyword tables.
package infer

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// Engine is the rule-driven architecture inferencer. It is stateless apart
// from its logger and safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine returns a ready inferencer.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger.Named("infer")}
}

// Infer maps requirements to a complete architecture. The result always has
// at least the three default components.
func (e *Engine) Infer(req schemas.Requirements) (*schemas.Architecture, error) {
	e.logger.Info("Inferring architecture from requirements.",
		zap.Int("entities", len(req.Entities)),
		zap.Float64("confidence", req.Confidence))

	archType := e.architectureType(req)
	components := e.components(req)
	relationships := e.relationships(components)

	arch := &schemas.Architecture{
		Components:        components,
		Relationships:     relationships,
		Patterns:          e.SuggestPatterns(req),
		QualityAttributes: req.QualityAttributes,
		TechnologyStack:   e.technologyStack(req),
		DeploymentModel:   e.deploymentModel(req),
		Metadata: map[string]interface{}{
			"architecture_type":       archType,
			"inference_timestamp":     time.Now().UTC().Format(time.RFC3339),
			"requirements_confidence": req.Confidence,
		},
	}
	return arch, nil
}

// SuggestPatterns scans the functional requirement text and quality flags
// for pattern hints. Duplicates are removed preserving first appearance;
// "layered" is the fallback when nothing matched.
func (e *Engine) SuggestPatterns(req schemas.Requirements) []string {
	text := strings.ToLower(strings.Join(req.Functional, " "))

	var patterns []string
	if containsAny(text, "api", "service", "microservice") {
		patterns = append(patterns, "microservices")
	}
	if containsAny(text, "web", "ui", "interface") {
		patterns = append(patterns, "mvc")
	}
	if containsAny(text, "event", "notification", "async") {
		patterns = append(patterns, "event_driven")
	}
	if containsAny(text, "layer", "tier") {
		patterns = append(patterns, "layered")
	}
	if req.QualityAttributes["scalability"] {
		patterns = append(patterns, "microservices")
	}
	if req.QualityAttributes["performance"] {
		patterns = append(patterns, "caching")
	}
	if len(patterns) == 0 {
		patterns = append(patterns, "layered")
	}
	return dedupe(patterns)
}

func (e *Engine) architectureType(req schemas.Requirements) string {
	text := strings.ToLower(strings.Join(req.Functional, " "))
	switch {
	case strings.Contains(text, "microservice"):
		return "microservices"
	case containsAny(text, "web", "api", "rest"):
		return "web_application"
	case strings.Contains(text, "mobile"):
		return "mobile_application"
	case containsAny(text, "desktop", "gui"):
		return "desktop_application"
	default:
		return "web_application"
	}
}

func (e *Engine) components(req schemas.Requirements) []schemas.Component {
	entitySet := map[string]struct{}{}
	for _, ent := range req.Entities {
		entitySet[ent] = struct{}{}
	}

	var components []schemas.Component
	for _, entity := range templateOrder {
		if _, ok := entitySet[entity]; !ok {
			continue
		}
		tpl := componentTemplates[entity]
		components = append(components, cloneComponent(tpl))
	}
	if len(components) == 0 {
		components = defaultComponents()
	}
	return components
}

// relationships derives edges by type adjacency: every api-typed component
// calls every service, every service uses every database. This is an
// all-pairs product, so edge counts grow quadratically with matching
// components.
func (e *Engine) relationships(components []schemas.Component) []schemas.Relationship {
	var apis, services, databases []schemas.Component
	for _, c := range components {
		switch {
		case strings.Contains(strings.ToLower(c.Type), "api"):
			apis = append(apis, c)
		case strings.Contains(strings.ToLower(c.Type), "database"):
			databases = append(databases, c)
		}
		if c.Type == "service" {
			services = append(services, c)
		}
	}

	relationships := []schemas.Relationship{}
	for _, api := range apis {
		for _, svc := range services {
			relationships = append(relationships, schemas.Relationship{
				Source:      api.Name,
				Target:      svc.Name,
				Type:        "calls",
				Description: fmt.Sprintf("%s calls %s", api.Name, svc.Name),
			})
		}
	}
	for _, svc := range services {
		for _, db := range databases {
			relationships = append(relationships, schemas.Relationship{
				Source:      svc.Name,
				Target:      db.Name,
				Type:        "uses",
				Description: fmt.Sprintf("%s uses %s", svc.Name, db.Name),
			})
		}
	}
	return relationships
}

func (e *Engine) technologyStack(req schemas.Requirements) map[string][]string {
	text := strings.ToLower(strings.Join(append(append([]string{}, req.Functional...), req.NonFunctional...), " "))

	stack := map[string][]string{
		"backend":        {},
		"frontend":       {},
		"database":       {},
		"infrastructure": {},
	}

	switch {
	case containsAny(text, "python", "django", "flask"):
		stack["backend"] = append(stack["backend"], "Python", "FastAPI")
	case containsAny(text, "node", "javascript"):
		stack["backend"] = append(stack["backend"], "Node.js", "Express")
	case containsAny(text, "java", "spring"):
		stack["backend"] = append(stack["backend"], "Java", "Spring Boot")
	default:
		stack["backend"] = append(stack["backend"], "Python", "FastAPI")
	}

	switch {
	case strings.Contains(text, "react"):
		stack["frontend"] = append(stack["frontend"], "React")
	case strings.Contains(text, "vue"):
		stack["frontend"] = append(stack["frontend"], "Vue.js")
	case strings.Contains(text, "angular"):
		stack["frontend"] = append(stack["frontend"], "Angular")
	default:
		stack["frontend"] = append(stack["frontend"], "React")
	}

	switch {
	case containsAny(text, "postgresql", "postgres"):
		stack["database"] = append(stack["database"], "PostgreSQL")
	case strings.Contains(text, "mysql"):
		stack["database"] = append(stack["database"], "MySQL")
	case containsAny(text, "mongodb", "mongo"):
		stack["database"] = append(stack["database"], "MongoDB")
	default:
		stack["database"] = append(stack["database"], "PostgreSQL")
	}

	stack["infrastructure"] = append(stack["infrastructure"], "Docker", "Kubernetes")
	return stack
}

func (e *Engine) deploymentModel(req schemas.Requirements) string {
	text := strings.ToLower(strings.Join(append(append([]string{}, req.Functional...), req.NonFunctional...), " "))
	switch {
	case containsAny(text, "cloud", "aws", "gcp"):
		return "cloud"
	case containsAny(text, "container", "docker"):
		return "containerized"
	case strings.Contains(text, "serverless"):
		return "serverless"
	default:
		return "cloud"
	}
}

func cloneComponent(c schemas.Component) schemas.Component {
	out := c
	out.Responsibilities = append([]string{}, c.Responsibilities...)
	out.Interfaces = append([]string{}, c.Interfaces...)
	out.Dependencies = append([]string{}, c.Dependencies...)
	return out
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func dedupe(items []string) []string {
	seen := map[string]struct{}{}
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

var _ schemas.ArchitectureInferencer = (*Engine)(nil)
