package architect

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/infer"
)

// Service orchestrates the architecture stage: inference, pattern
// application, validation with one auto-fix pass, then optimization.
type Service struct {
	inferencer schemas.ArchitectureInferencer
	logger     *zap.Logger
}

// NewService wires the architecture stage around an inferencer.
func NewService(inferencer schemas.ArchitectureInferencer, logger *zap.Logger) *Service {
	return &Service{inferencer: inferencer, logger: logger.Named("architect")}
}

// InferAndValidate produces the final architecture for a set of
// requirements. Validation issues are repaired once where possible and
// logged otherwise; they never fail the stage.
func (s *Service) InferAndValidate(req schemas.Requirements) (*schemas.Architecture, error) {
	arch, err := s.inferencer.Infer(req)
	if err != nil {
		return nil, &schemas.ArchitectureInferenceError{Msg: "failed to infer architecture", Err: err}
	}

	s.applyPatterns(arch, req)

	if issues := Validate(arch); len(issues) > 0 {
		s.logger.Warn("Architecture validation issues.", zap.Strings("issues", issues))
		AutoFix(arch, issues, s.logger)
		if residual := Validate(arch); len(residual) > 0 {
			s.logger.Warn("Residual issues after auto-fix.", zap.Strings("issues", residual))
		}
	}

	Optimize(arch, req)

	s.logger.Info("Architecture stage completed.",
		zap.Int("components", len(arch.Components)),
		zap.Strings("patterns", arch.Patterns))
	return arch, nil
}

// applyPatterns injects the library components and relationships of every
// suggested pattern that exists in the catalog. Existing component names are
// never overwritten.
func (s *Service) applyPatterns(arch *schemas.Architecture, req schemas.Requirements) {
	library := infer.PatternLibrary()

	for _, name := range s.inferencer.SuggestPatterns(req) {
		pattern, ok := library[name]
		if !ok {
			continue
		}
		for _, tpl := range pattern.Components {
			if arch.ComponentByName(tpl.Name) == nil {
				arch.Components = append(arch.Components, tpl)
			}
		}
		arch.Relationships = append(arch.Relationships, pattern.Relationships...)
		if !arch.HasPattern(name) {
			arch.Patterns = append(arch.Patterns, name)
		}
	}
}
