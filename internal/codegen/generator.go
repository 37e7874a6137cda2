// Package codegen emits runnable skeleton applications for an architecture
// in each supported target language.
package codegen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// emitter produces the file map for one language.
type emitter func(arch *schemas.Architecture, framework string) map[string]string

// Generator turns an architecture into per-language skeleton code. Language
// dispatch is an explicit table; unknown languages fail with
// UnsupportedLanguageError before any file is built.
type Generator struct {
	logger   *zap.Logger
	emitters map[schemas.Language]emitter
}

// NewGenerator builds a generator with every supported language registered.
func NewGenerator(logger *zap.Logger) *Generator {
	g := &Generator{logger: logger.Named("codegen")}
	g.emitters = map[schemas.Language]emitter{
		schemas.LanguagePython:     g.emitPython,
		schemas.LanguageRust:       g.emitRust,
		schemas.LanguageGo:         g.emitGo,
		schemas.LanguageTypeScript: g.emitTypeScript,
		schemas.LanguageJava:       g.emitJava,
		schemas.LanguageCPP:        g.emitCPP,
	}
	return g
}

// Generate produces the artifact for one language target. An empty framework
// selects the per-language default.
func (g *Generator) Generate(ctx context.Context, arch *schemas.Architecture, lang schemas.Language, framework string) (*schemas.GeneratedCode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	emit, ok := g.emitters[lang]
	if !ok {
		return nil, &schemas.UnsupportedLanguageError{Language: string(lang)}
	}
	if framework == "" {
		framework = DefaultFramework(lang)
	}

	g.logger.Info("Generating code.",
		zap.String("language", string(lang)),
		zap.String("framework", framework))

	code := &schemas.GeneratedCode{
		Language:      lang,
		Framework:     framework,
		Files:         emit(arch, framework),
		Dependencies:  Dependencies(lang, framework),
		EntryPoint:    mainFilenames[lang],
		BuildCommands: BuildCommands(lang),
		RunCommands:   RunCommands(lang),
		Metadata: map[string]interface{}{
			"port":         defaultPorts[lang],
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if err := code.Validate(); err != nil {
		return nil, fmt.Errorf("generated %s artifact invalid: %w", lang, err)
	}
	return code, nil
}

// componentNames renders the quoted component name list used by the health
// endpoints.
func componentNames(arch *schemas.Architecture) []string {
	names := make([]string, 0, len(arch.Components))
	for _, c := range arch.Components {
		names = append(names, c.Name)
	}
	return names
}

// apiComponents are the components that get their own route in the
// generated application.
func apiComponents(arch *schemas.Architecture) []schemas.Component {
	var out []schemas.Component
	for _, c := range arch.Components {
		if strings.Contains(strings.ToLower(c.Name), "api") {
			out = append(out, c)
		}
	}
	return out
}

func quoteJoin(names []string, quote, sep string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote + n + quote
	}
	return strings.Join(quoted, sep)
}

var _ schemas.CodeGenerator = (*Generator)(nil)
