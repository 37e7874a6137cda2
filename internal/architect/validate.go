// Package architect validates, repairs and optimizes inferred architectures.
package architect

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/infer"
)

// technologyConflicts are mutually exclusive technology pairs, matched
// case-insensitively over the flattened stack.
var technologyConflicts = []struct {
	a, b    string
	message string
}{
	{"mysql", "postgresql", "Cannot use both MySQL and PostgreSQL"},
	{"react", "vue", "Cannot use both React and Vue in frontend"},
	{"express", "fastify", "Cannot use both Express and Fastify"},
}

// technologyDependencies name technologies that require another to be
// present somewhere in the stack.
var technologyDependencies = []struct {
	tech string
	deps []string
}{
	{"react", []string{"nodejs"}},
	{"vue", []string{"nodejs"}},
	{"django", []string{"python"}},
	{"flask", []string{"python"}},
	{"spring", []string{"java"}},
	{"express", []string{"nodejs"}},
}

// Validate runs every structural check and returns the collected issues.
// All checks execute; nothing short-circuits, and issues are never fatal.
func Validate(arch *schemas.Architecture) []string {
	var issues []string
	issues = append(issues, validateComponents(arch.Components)...)
	issues = append(issues, validateRelationships(arch)...)
	issues = append(issues, validatePatterns(arch)...)
	issues = append(issues, validateTechnologyStack(arch.TechnologyStack)...)
	return issues
}

func validateComponents(components []schemas.Component) []string {
	var issues []string
	if len(components) == 0 {
		return append(issues, "Architecture has no components")
	}

	seen := map[string]struct{}{}
	for _, c := range components {
		if _, dup := seen[c.Name]; dup {
			issues = append(issues, fmt.Sprintf("Duplicate component name: %s", c.Name))
		}
		seen[c.Name] = struct{}{}

		if len(c.Responsibilities) == 0 {
			issues = append(issues, fmt.Sprintf("Component %s has no responsibilities", c.Name))
		}
		if c.Type == "" {
			issues = append(issues, fmt.Sprintf("Component %s has no type", c.Name))
		}
	}
	return issues
}

func validateRelationships(arch *schemas.Architecture) []string {
	var issues []string
	names := map[string]struct{}{}
	for _, c := range arch.Components {
		names[c.Name] = struct{}{}
	}

	for _, rel := range arch.Relationships {
		if rel.Source == "" || rel.Target == "" {
			issues = append(issues, "Relationship missing source or target")
			continue
		}
		if _, ok := names[rel.Source]; !ok {
			issues = append(issues, fmt.Sprintf("Relationship references unknown component: %s", rel.Source))
		}
		if _, ok := names[rel.Target]; !ok {
			issues = append(issues, fmt.Sprintf("Relationship references unknown component: %s", rel.Target))
		}
	}
	return issues
}

func validatePatterns(arch *schemas.Architecture) []string {
	var issues []string
	library := infer.PatternLibrary()

	for _, pattern := range arch.Patterns {
		entry, known := library[pattern]
		if !known {
			issues = append(issues, fmt.Sprintf("Unknown architectural pattern: %s", pattern))
			continue
		}
		for _, requirement := range entry.Requirements {
			if !infer.CheckPatternRequirement(arch, requirement) {
				issues = append(issues, fmt.Sprintf("Pattern %s requirement not met: %s", pattern, requirement))
			}
		}
	}
	return issues
}

func validateTechnologyStack(stack map[string][]string) []string {
	var issues []string

	present := map[string]struct{}{}
	for _, techs := range stack {
		for _, tech := range techs {
			present[strings.ToLower(tech)] = struct{}{}
		}
	}
	has := func(tech string) bool {
		_, ok := present[tech]
		return ok
	}

	for _, conflict := range technologyConflicts {
		if has(conflict.a) && has(conflict.b) {
			issues = append(issues, conflict.message)
		}
	}
	for _, rule := range technologyDependencies {
		if !has(rule.tech) {
			continue
		}
		for _, dep := range rule.deps {
			if !has(dep) {
				issues = append(issues, fmt.Sprintf("Technology %s requires %s", rule.tech, dep))
			}
		}
	}
	return issues
}
