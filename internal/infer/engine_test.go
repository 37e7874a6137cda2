package infer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

func TestInferFromEntities(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	req := schemas.Requirements{
		Functional:        []string{"Create a REST API for user management with authentication"},
		QualityAttributes: map[string]bool{},
		Entities:          []string{"api", "authentication", "rest", "user"},
		Confidence:        1.0,
	}

	arch, err := e.Infer(req)
	require.NoError(t, err)

	names := componentNames(arch)
	assert.Contains(t, names, "APIService")
	assert.Contains(t, names, "UserService")
	assert.Contains(t, names, "AuthenticationService")

	assert.Equal(t, "web_application", arch.Metadata["architecture_type"])
	assert.Contains(t, arch.Patterns, "microservices")
	assert.Equal(t, []string{"Python", "FastAPI"}, arch.TechnologyStack["backend"])
	assert.Equal(t, []string{"React"}, arch.TechnologyStack["frontend"])
	assert.Equal(t, []string{"PostgreSQL"}, arch.TechnologyStack["database"])
	assert.Equal(t, []string{"Docker", "Kubernetes"}, arch.TechnologyStack["infrastructure"])
	assert.Equal(t, "cloud", arch.DeploymentModel)
}

func TestInferDefaultsWhenNoEntityMatches(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	req := schemas.Requirements{
		Functional:        []string{"the sky is blue"},
		QualityAttributes: map[string]bool{},
	}

	arch, err := e.Infer(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"APIGateway", "BusinessService", "DatabaseService"}, componentNames(arch))
	assert.Equal(t, []string{"layered"}, arch.Patterns)
}

func TestRelationshipsAllPairs(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	// api + database + three service components: every api calls every
	// service, every service uses every database.
	req := schemas.Requirements{
		Functional:        []string{"Build an api"},
		QualityAttributes: map[string]bool{},
		Entities:          []string{"api", "authentication", "database", "payment", "user"},
	}

	arch, err := e.Infer(req)
	require.NoError(t, err)

	calls, uses := 0, 0
	for _, r := range arch.Relationships {
		switch r.Type {
		case "calls":
			calls++
		case "uses":
			uses++
		}
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, uses)
}

func TestInferDeterministic(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	req := schemas.Requirements{
		Functional:        []string{"Create a payment api with notifications"},
		QualityAttributes: map[string]bool{"scalability": true},
		Entities:          []string{"api", "notification", "payment"},
	}

	first, err := e.Infer(req)
	require.NoError(t, err)
	second, err := e.Infer(req)
	require.NoError(t, err)

	// Metadata carries a timestamp; compare everything else.
	first.Metadata, second.Metadata = nil, nil
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("inference not deterministic (-first +second):\n%s", diff)
	}
}

func TestSuggestPatterns(t *testing.T) {
	e := NewEngine(zaptest.NewLogger(t))

	t.Run("keyword driven", func(t *testing.T) {
		req := schemas.Requirements{
			Functional:        []string{"build a web ui with async notification events in layers"},
			QualityAttributes: map[string]bool{},
		}
		got := e.SuggestPatterns(req)
		assert.Equal(t, []string{"mvc", "event_driven", "layered"}, got)
	})

	t.Run("quality attributes force patterns", func(t *testing.T) {
		req := schemas.Requirements{
			Functional:        []string{"nothing special"},
			QualityAttributes: map[string]bool{"scalability": true, "performance": true},
		}
		got := e.SuggestPatterns(req)
		assert.Contains(t, got, "microservices")
		assert.Contains(t, got, "caching")
	})

	t.Run("no duplicates", func(t *testing.T) {
		req := schemas.Requirements{
			Functional:        []string{"an api service"},
			QualityAttributes: map[string]bool{"scalability": true},
		}
		got := e.SuggestPatterns(req)
		assert.Equal(t, []string{"microservices"}, got)
	})
}

func TestCheckPatternRequirement(t *testing.T) {
	arch := &schemas.Architecture{
		Components: []schemas.Component{
			{Name: "A", Type: "service"},
			{Name: "B", Type: "service"},
			{Name: "C", Type: "database"},
		},
		DeploymentModel: "cloud",
	}

	assert.True(t, CheckPatternRequirement(arch, "clear_separation_of_concerns"))
	assert.True(t, CheckPatternRequirement(arch, "service_independence"))
	assert.False(t, CheckPatternRequirement(arch, "distributed_deployment"))
	assert.False(t, CheckPatternRequirement(arch, "clear_mvc_separation"))
	assert.False(t, CheckPatternRequirement(arch, "event_based_communication"))
	assert.True(t, CheckPatternRequirement(arch, "unknown_requirement"))

	arch.DeploymentModel = "microservices"
	assert.True(t, CheckPatternRequirement(arch, "distributed_deployment"))
}

func componentNames(arch *schemas.Architecture) []string {
	names := make([]string, 0, len(arch.Components))
	for _, c := range arch.Components {
		names = append(names, c.Name)
	}
	return names
}
