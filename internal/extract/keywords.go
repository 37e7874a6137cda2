package extract

// The classification tables below are the contract of the extractor: the
// whole pipeline keys off these exact word lists, so changing an entry
// changes every downstream architecture.

// actionKeywords mark functional requirements.
var actionKeywords = []string{
	"create", "build", "implement", "develop", "add", "remove",
	"update", "delete", "manage", "handle", "process", "generate",
}

// qualityKeywords mark non-functional requirements.
var qualityKeywords = []string{
	"performance", "scalability", "security", "reliability",
	"availability", "usability", "maintainability", "portability",
}

// constraintKeywords mark constraints.
var constraintKeywords = []string{
	"must", "should", "cannot", "limited to", "restricted",
	"required", "mandatory", "forbidden", "not allowed",
}

// ruleKeywords mark business rules.
var ruleKeywords = []string{
	"if", "when", "unless", "only if", "provided that",
	"business rule", "policy", "regulation", "compliance",
}

// intentKeywords feed the parsing confidence score: a statement counts as
// parsed when it contains at least one of these.
var intentKeywords = []string{
	"create", "build", "implement", "need", "want", "should", "must",
}

// qualityAttributeNames are the boolean quality flags scanned over the whole
// conversation text.
var qualityAttributeNames = []string{
	"performance", "scalability", "security", "reliability", "usability",
}

// technicalKeywords is the fixed entity vocabulary.
var technicalKeywords = []string{
	"api", "database", "user", "authentication", "authorization",
	"payment", "notification", "email", "sms", "file", "upload",
	"download", "search", "filter", "sort", "pagination", "cache",
	"session", "cookie", "token", "jwt", "oauth", "ssl", "https",
	"rest", "graphql", "websocket", "microservice", "container",
	"docker", "kubernetes", "aws", "gcp", "azure",
}
