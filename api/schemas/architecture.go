package schemas

// Component is one unit of the inferred architecture. Names are unique
// within an Architecture; dependencies reference other components by name.
type Component struct {
	Name             string                 `json:"name"`
	Type             string                 `json:"type"`
	Responsibilities []string               `json:"responsibilities"`
	Interfaces       []string               `json:"interfaces,omitempty"`
	Dependencies     []string               `json:"dependencies,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
}

// Relationship is a directed edge between two components, referenced by name.
type Relationship struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Architecture is the complete inferred system design. It is mutated in
// place by the pattern, auto-fix and optimization passes, then treated as
// frozen once handed to the code generator. Not safe for concurrent
// mutation.
type Architecture struct {
	Components        []Component            `json:"components"`
	Relationships     []Relationship         `json:"relationships"`
	Patterns          []string               `json:"patterns"`
	QualityAttributes map[string]bool        `json:"quality_attributes"`
	TechnologyStack   map[string][]string    `json:"technology_stack"`
	DeploymentModel   string                 `json:"deployment_model"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// ComponentByName returns a pointer into the component slice, or nil when no
// component carries that name. The pointer is invalidated by appends.
func (a *Architecture) ComponentByName(name string) *Component {
	for i := range a.Components {
		if a.Components[i].Name == name {
			return &a.Components[i]
		}
	}
	return nil
}

// ComponentsByType returns all components whose type matches exactly.
func (a *Architecture) ComponentsByType(typ string) []Component {
	var out []Component
	for _, c := range a.Components {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// HasComponentType reports whether any component carries the exact type.
func (a *Architecture) HasComponentType(typ string) bool {
	for _, c := range a.Components {
		if c.Type == typ {
			return true
		}
	}
	return false
}

// HasPattern reports whether the pattern name is already recorded.
func (a *Architecture) HasPattern(name string) bool {
	for _, p := range a.Patterns {
		if p == name {
			return true
		}
	}
	return false
}
