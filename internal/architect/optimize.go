package architect

import (
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// Optimize applies quality-attribute driven additions to the architecture.
// Every addition is guarded by a presence check, so the pass is idempotent:
// running it twice yields the same architecture as running it once. The
// security pass runs first because it can add a service-typed component,
// and the performance pass counts services to decide on a load balancer;
// the count must already include every component this function adds.
func Optimize(arch *schemas.Architecture, req schemas.Requirements) {
	if req.QualityAttributes["security"] {
		optimizeForSecurity(arch)
	}
	if req.QualityAttributes["scalability"] {
		optimizeForScalability(arch)
	}
	if req.QualityAttributes["performance"] {
		optimizeForPerformance(arch)
	}
}

func optimizeForPerformance(arch *schemas.Architecture) {
	if !arch.HasComponentType("cache") {
		arch.Components = append(arch.Components, schemas.Component{
			Name:             "CacheLayer",
			Type:             "cache",
			Responsibilities: []string{"Data caching", "Performance optimization"},
			Interfaces:       []string{"CacheInterface"},
		})
	}
	if len(arch.ComponentsByType("service")) > 1 && !arch.HasComponentType("load_balancer") {
		arch.Components = append(arch.Components, schemas.Component{
			Name:             "LoadBalancer",
			Type:             "load_balancer",
			Responsibilities: []string{"Load distribution", "High availability"},
			Interfaces:       []string{"LoadBalancerInterface"},
		})
	}
}

func optimizeForScalability(arch *schemas.Architecture) {
	if !arch.HasPattern("microservices") {
		arch.Patterns = append(arch.Patterns, "microservices")
	}
	if !arch.HasComponentType("message_queue") {
		arch.Components = append(arch.Components, schemas.Component{
			Name:             "MessageQueue",
			Type:             "message_queue",
			Responsibilities: []string{"Async message processing", "Service decoupling"},
			Interfaces:       []string{"MessageQueueInterface"},
		})
	}
}

func optimizeForSecurity(arch *schemas.Architecture) {
	hasAuth := false
	for _, c := range arch.Components {
		if strings.Contains(strings.ToLower(c.Name), "auth") {
			hasAuth = true
			break
		}
	}
	if !hasAuth {
		arch.Components = append(arch.Components, schemas.Component{
			Name:             "AuthenticationService",
			Type:             "service",
			Responsibilities: []string{"User authentication", "Token management"},
			Interfaces:       []string{"AuthInterface"},
		})
	}
	if !arch.HasComponentType("api_gateway") {
		arch.Components = append(arch.Components, schemas.Component{
			Name:             "APIGateway",
			Type:             "api_gateway",
			Responsibilities: []string{"Request routing", "Authentication", "Rate limiting"},
			Interfaces:       []string{"GatewayInterface"},
		})
	}
}
