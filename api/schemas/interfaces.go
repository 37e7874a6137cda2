package schemas

import "context"

// RequirementsExtractor turns a conversation into structured requirements.
type RequirementsExtractor interface {
	Extract(conv *Conversation) (Requirements, error)
	ExtractEntities(text string) []string
	ClassifyStatement(s Statement) string
}

// ArchitectureInferencer derives an architecture from requirements.
type ArchitectureInferencer interface {
	Infer(req Requirements) (*Architecture, error)
	SuggestPatterns(req Requirements) []string
}

// CodeGenerator emits a skeleton artifact for one language target.
type CodeGenerator interface {
	Generate(ctx context.Context, arch *Architecture, lang Language, framework string) (*GeneratedCode, error)
}

// Deployer hands a generated artifact to one cloud provider. Deploy and
// Update report failures through the result, never through a Go error.
type Deployer interface {
	Deploy(ctx context.Context, code *GeneratedCode, cfg DeploymentConfig) DeploymentResult
	Status(ctx context.Context, deploymentID string) DeploymentStatus
	Update(ctx context.Context, deploymentID string, files map[string]string) DeploymentResult
	Delete(ctx context.Context, deploymentID string) bool
}

// LLMClient is an opaque prompt-in, text-out collaborator.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
