package infer

import "github.com/xkilldash9x/reify-cli/api/schemas"

// componentTemplates maps an extracted entity to the component it
// instantiates. Entities without a template contribute nothing.
var componentTemplates = map[string]schemas.Component{
	"api": {
		Name:             "APIService",
		Type:             "api",
		Responsibilities: []string{"Handle HTTP requests", "Route requests"},
		Interfaces:       []string{"RestAPI", "HTTPInterface"},
	},
	"database": {
		Name:             "DatabaseService",
		Type:             "database",
		Responsibilities: []string{"Data storage", "Data retrieval"},
		Interfaces:       []string{"DatabaseInterface"},
	},
	"user": {
		Name:             "UserService",
		Type:             "service",
		Responsibilities: []string{"User management", "Authentication"},
		Interfaces:       []string{"UserInterface"},
	},
	"authentication": {
		Name:             "AuthenticationService",
		Type:             "service",
		Responsibilities: []string{"User authentication", "Token management"},
		Interfaces:       []string{"AuthInterface"},
	},
	"payment": {
		Name:             "PaymentService",
		Type:             "service",
		Responsibilities: []string{"Payment processing", "Transaction management"},
		Interfaces:       []string{"PaymentInterface"},
	},
	"notification": {
		Name:             "NotificationService",
		Type:             "service",
		Responsibilities: []string{"Send notifications", "Message delivery"},
		Interfaces:       []string{"NotificationInterface"},
	},
}

// templateOrder fixes the instantiation order so inference is deterministic
// regardless of entity set iteration.
var templateOrder = []string{"api", "database", "user", "authentication", "payment", "notification"}

// defaultComponents is the fallback architecture when no entity matched a
// template: a straight gateway, service, database chain.
func defaultComponents() []schemas.Component {
	return []schemas.Component{
		{
			Name:             "APIGateway",
			Type:             "api_gateway",
			Responsibilities: []string{"Request routing", "Authentication"},
			Interfaces:       []string{"HTTPInterface"},
		},
		{
			Name:             "BusinessService",
			Type:             "service",
			Responsibilities: []string{"Business logic", "Data processing"},
			Interfaces:       []string{"BusinessInterface"},
			Dependencies:     []string{"DatabaseService"},
		},
		{
			Name:             "DatabaseService",
			Type:             "database",
			Responsibilities: []string{"Data persistence", "Data retrieval"},
			Interfaces:       []string{"DatabaseInterface"},
		},
	}
}
