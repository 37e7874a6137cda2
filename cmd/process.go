package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/observability"
	"github.com/xkilldash9x/reify-cli/internal/service"
)

// newProcessCmd creates and configures the `process` command.
func newProcessCmd() *cobra.Command {
	var (
		languages  []string
		inputFile  string
		jsonOutput bool
	)

	processCmd := &cobra.Command{
		Use:   "process [statements...]",
		Short: "Runs the full statement-to-prototype pipeline",
		Long: `Process classifies the given natural language statements, infers a
system architecture from them, and generates runnable skeleton projects
for each requested target language. Each positional argument is treated
as one statement; --file reads additional statements, one per line.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their corresponding Viper keys so command-line
			// flags correctly override values from the config file and
			// environment variables. Only changed flags are bound; an
			// unchanged flag's empty default would shadow the configured value.
			return bindChangedFlags(cmd, map[string]string{
				"processing.output_directory": "output",
				"processing.default_language": "default-language",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			// Re-build the config now that the command flags are bound.
			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return err
			}

			langs, err := resolveLanguageFlags(languages)
			if err != nil {
				return err
			}

			statements, err := collectStatements(args, inputFile)
			if err != nil {
				return err
			}
			if len(statements) == 0 {
				return fmt.Errorf("at least one statement (or --file) is required")
			}

			conv, err := schemas.NewConversation(
				fmt.Sprintf("cli_%s", uuid.NewString()),
				statements,
				map[string]interface{}{"source": "cli"},
			)
			if err != nil {
				return err
			}

			components, err := service.NewComponents(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize pipeline components: %w", err)
			}
			defer components.Shutdown()

			processor := service.NewProcessor(components, logger)

			runCtx, cancel := context.WithTimeout(ctx, cfg.Processing().PipelineTimeout)
			defer cancel()

			result := processor.ProcessConversation(runCtx, conv, langs)

			if jsonOutput {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary
				out, err := enc.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else {
				if err := writeArtifacts(cmd, result, cfg.Processing().OutputDirectory, logger); err != nil {
					return err
				}
			}

			if !result.Success {
				return fmt.Errorf("processing failed: %s", strings.Join(result.Errors, "; "))
			}
			return nil
		},
	}

	processCmd.Flags().StringSliceVarP(&languages, "languages", "l", nil, "target languages (e.g. python,go,rust); defaults to the configured language")
	processCmd.Flags().StringP("output", "o", "", "directory to write generated projects into")
	processCmd.Flags().String("default-language", "", "language used when --languages is not given")
	processCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read statements from a file, one per line")
	processCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full processing result as JSON instead of writing files")

	return processCmd
}

// collectStatements builds the statement list from positional arguments and an
// optional input file. Blank lines and lines starting with '#' are skipped.
func collectStatements(args []string, inputFile string) ([]schemas.Statement, error) {
	contents := make([]string, 0, len(args))
	contents = append(contents, args...)

	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open statement file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			contents = append(contents, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read statement file: %w", err)
		}
	}

	statements := make([]schemas.Statement, 0, len(contents))
	for _, content := range contents {
		stmt, err := schemas.NewStatement(content, "user", schemas.StatementFunctional)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// resolveLanguageFlags parses the --languages values. An empty list means the
// processor falls back to the configured default language.
func resolveLanguageFlags(values []string) ([]schemas.Language, error) {
	langs := make([]schemas.Language, 0, len(values))
	for _, v := range values {
		lang, err := schemas.ParseLanguage(v)
		if err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return langs, nil
}

// writeArtifacts persists each generated project under outputDir/<language>/
// and prints a short summary per target.
func writeArtifacts(cmd *cobra.Command, result *schemas.ProcessingResult, outputDir string, logger *zap.Logger) error {
	for lang, code := range result.GeneratedCode {
		projectDir := filepath.Join(outputDir, string(lang))
		for name, content := range code.Files {
			path := filepath.Join(projectDir, filepath.FromSlash(name))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
		logger.Info("Wrote generated project",
			zap.String("language", string(lang)),
			zap.String("framework", code.Framework),
			zap.String("directory", projectDir),
			zap.Int("files", len(code.Files)))
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-10s %s (entry point: %s)\n",
			lang, code.Framework, projectDir, code.EntryPoint)
	}

	if arch := result.Architecture; arch != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nArchitecture: %d components, %d relationships, patterns: %s\n",
			len(arch.Components), len(arch.Relationships), strings.Join(arch.Patterns, ", "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return nil
}
