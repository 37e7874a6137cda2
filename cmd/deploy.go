package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/observability"
	"github.com/xkilldash9x/reify-cli/internal/service"
)

// newDeployCmd creates and configures the `deploy` command.
func newDeployCmd() *cobra.Command {
	var languageName string

	deployCmd := &cobra.Command{
		Use:   "deploy [statements...]",
		Short: "Generates a prototype from the statements and deploys it",
		Long: `Deploy runs the processing pipeline for a single target language and
hands the generated project to the configured cloud provider. Provider
credentials are read from the environment (VERCEL_TOKEN,
NETLIFY_AUTH_TOKEN, AWS_ACCOUNT_ID, AZURE_SUBSCRIPTION_ID).`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindChangedFlags(cmd, map[string]string{
				"deploy.default_provider": "provider",
				"deploy.region":           "region",
				"deploy.project_id":       "project",
				"deploy.resource_group":   "resource-group",
				"deploy.environment":      "env-name",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return err
			}

			provider, err := schemas.ParseProvider(cfg.Deploy().DefaultProvider)
			if err != nil {
				return err
			}

			lang, err := schemas.ParseLanguage(languageName)
			if err != nil {
				return err
			}

			statements, err := collectStatements(args, "")
			if err != nil {
				return err
			}
			conv, err := schemas.NewConversation(
				fmt.Sprintf("deploy_%s", uuid.NewString()),
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

			result := processor.ProcessConversation(runCtx, conv, []schemas.Language{lang})
			if !result.Success {
				return fmt.Errorf("processing failed: %s", strings.Join(result.Errors, "; "))
			}
			code, ok := result.GeneratedCode[lang]
			if !ok {
				return fmt.Errorf("no code was generated for language %q", lang)
			}

			deployCfg := schemas.DeploymentConfig{
				Provider:      provider,
				Region:        cfg.Deploy().Region,
				ProjectID:     cfg.Deploy().ProjectID,
				ResourceGroup: cfg.Deploy().ResourceGroup,
				Environment:   cfg.Deploy().Environment,
				Credentials:   cfg.Deploy().Credentials,
			}

			deployment := components.Deployer.Deploy(runCtx, code, deployCfg)
			for _, line := range deployment.Logs {
				logger.Info("Deployment log", zap.String("provider", string(provider)), zap.String("entry", line))
			}
			if !deployment.Success {
				return fmt.Errorf("deployment failed: %s", deployment.Error)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deployed to %s\n", provider)
			if deployment.URL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "URL:           %s\n", deployment.URL)
			}
			if deployment.DeploymentID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Deployment ID: %s\n", deployment.DeploymentID)
			}
			return nil
		},
	}

	deployCmd.Flags().StringP("provider", "P", "", "deployment target (aws, gcp, azure, vercel, netlify, railway, render)")
	deployCmd.Flags().StringVarP(&languageName, "language", "l", "python", "language of the generated project")
	deployCmd.Flags().String("region", "", "provider region")
	deployCmd.Flags().String("project", "", "project identifier (GCP)")
	deployCmd.Flags().String("resource-group", "", "resource group (Azure)")
	deployCmd.Flags().String("env-name", "", "deployment environment name")

	return deployCmd
}
