// File: internal/service/processor.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// Processor runs the complete statement-to-reality pipeline: requirements
// extraction, architecture inference, and multi language code generation.
type Processor struct {
	components *Components
	logger     *zap.Logger
}

// NewProcessor wires a processor over an initialized component set.
func NewProcessor(components *Components, logger *zap.Logger) *Processor {
	return &Processor{
		components: components,
		logger:     logger.Named("processor"),
	}
}

// ProcessConversation executes the pipeline end to end. Failures accumulate
// on the result; an extraction or inference failure aborts the run, while a
// single language failing to generate only produces a warning.
func (p *Processor) ProcessConversation(ctx context.Context, conv *schemas.Conversation, languages []schemas.Language) *schemas.ProcessingResult {
	start := time.Now()
	result := schemas.NewProcessingResult(conv)
	defer func() {
		result.ProcessingTime = time.Since(start).Seconds()
		p.components.Metrics.RecordProcessingTime("process_conversation", time.Since(start))
	}()

	p.components.Metrics.IncrementCounter("conversations_processed", nil)

	if conv != nil {
		analysis := p.components.Extractor.AnalyzeComplexity(conv)
		result.Metadata["analysis"] = analysis
		p.components.Metrics.RecordGauge("complexity_score", analysis.ComplexityScore, nil)
	}

	requirements, err := p.components.Extractor.Extract(conv)
	if err != nil {
		result.AddError(fmt.Sprintf("requirements extraction failed: %v", err))
		return result
	}
	result.Requirements = requirements

	p.consultLLM(ctx, conv, requirements)

	arch, err := p.components.Architect.InferAndValidate(requirements)
	if err != nil {
		result.AddError(fmt.Sprintf("architecture inference failed: %v", err))
		return result
	}
	result.Architecture = arch

	if err := ctx.Err(); err != nil {
		result.AddError(fmt.Sprintf("pipeline canceled: %v", err))
		return result
	}

	langs := p.resolveLanguages(languages, result)
	if len(langs) > 0 {
		generated := p.components.Generator.GenerateAll(ctx, arch, langs)
		result.GeneratedCode = generated
		for _, lang := range langs {
			if _, ok := generated[lang]; !ok {
				result.AddWarning(fmt.Sprintf("code generation failed for language: %s", lang))
			}
		}
		p.components.Metrics.RecordGauge("languages_generated", float64(len(generated)), nil)
	}

	result.DeploymentConfigs = p.defaultDeploymentConfigs()

	p.logger.Info("Conversation processed.",
		zap.String("conversation_id", conversationID(conv)),
		zap.Int("requirements", requirements.Total()),
		zap.Int("components", len(arch.Components)),
		zap.Int("languages", len(result.GeneratedCode)),
		zap.Bool("success", result.Success))
	return result
}

// ProcessStatement wraps a single statement into a fresh conversation and
// runs the pipeline on it. Callers own statement construction so request
// level fields (context, timestamp) survive into the conversation.
func (p *Processor) ProcessStatement(ctx context.Context, stmt schemas.Statement, languages []schemas.Language) (*schemas.ProcessingResult, error) {
	if err := stmt.Validate(); err != nil {
		return nil, err
	}
	conv, err := schemas.NewConversation(
		fmt.Sprintf("web_session_%s", uuid.NewString()),
		[]schemas.Statement{stmt},
		map[string]interface{}{"source": "single_statement"},
	)
	if err != nil {
		return nil, err
	}
	return p.ProcessConversation(ctx, conv, languages), nil
}

// EvolveSystem re-runs the pipeline over a fresh conversation built from the
// new statements.
func (p *Processor) EvolveSystem(ctx context.Context, statements []schemas.Statement, languages []schemas.Language) (*schemas.ProcessingResult, error) {
	conv, err := schemas.NewConversation(
		fmt.Sprintf("evolution_%d", len(statements)),
		statements,
		map[string]interface{}{"evolution_cycle": true},
	)
	if err != nil {
		return nil, err
	}
	return p.ProcessConversation(ctx, conv, languages), nil
}

// consultLLM asks the optional collaborator for a second opinion on the
// extraction. The response is only logged; the keyword tables stay the
// source of truth and a collaborator failure never affects the result.
func (p *Processor) consultLLM(ctx context.Context, conv *schemas.Conversation, req schemas.Requirements) {
	if !p.components.Config.LLM().Enabled {
		return
	}

	var sb strings.Builder
	sb.WriteString("Review these extracted software requirements for gaps. Statements:\n")
	for _, s := range conv.Statements {
		sb.WriteString("- ")
		sb.WriteString(s.Content)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Extracted: %d functional, %d non-functional, %d constraints, %d business rules.\n",
		len(req.Functional), len(req.NonFunctional), len(req.Constraints), len(req.BusinessRules))

	response, err := p.components.LLM.Complete(ctx, sb.String())
	if err != nil {
		p.logger.Warn("LLM collaborator call failed.",
			zap.String("client", p.components.LLM.Name()), zap.Error(err))
		return
	}
	p.logger.Debug("LLM collaborator review.",
		zap.String("client", p.components.LLM.Name()),
		zap.String("response", response))
	p.components.Metrics.IncrementCounter("llm_consultations", nil)
}

func (p *Processor) resolveLanguages(languages []schemas.Language, result *schemas.ProcessingResult) []schemas.Language {
	if len(languages) > 0 {
		return languages
	}
	lang, err := schemas.ParseLanguage(p.components.Config.Processing().DefaultLanguage)
	if err != nil {
		result.AddWarning(fmt.Sprintf("no usable default language: %v", err))
		return nil
	}
	return []schemas.Language{lang}
}

// defaultDeploymentConfigs seeds a ready-to-use config for the configured
// default provider. Nothing is deployed here.
func (p *Processor) defaultDeploymentConfigs() map[schemas.Provider]schemas.DeploymentConfig {
	deployCfg := p.components.Config.Deploy()
	provider := schemas.Provider(deployCfg.DefaultProvider)

	cfg := schemas.DeploymentConfig{
		Provider:      provider,
		Region:        deployCfg.Region,
		ProjectID:     deployCfg.ProjectID,
		ResourceGroup: deployCfg.ResourceGroup,
		Environment:   deployCfg.Environment,
		Credentials:   deployCfg.Credentials,
	}.WithDefaults()

	return map[schemas.Provider]schemas.DeploymentConfig{provider: cfg}
}

func conversationID(conv *schemas.Conversation) string {
	if conv == nil {
		return ""
	}
	return conv.ID
}
