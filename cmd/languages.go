package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/codegen"
)

// newLanguagesCmd creates the `languages` command.
func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "Lists the supported generation targets and their frameworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %-10s %s\n", "LANGUAGE", "DEFAULT", "FRAMEWORKS")
			for _, lang := range schemas.SupportedLanguages() {
				fmt.Fprintf(w, "%-12s %-10s %s\n",
					lang,
					codegen.DefaultFramework(lang),
					strings.Join(codegen.SupportedFrameworks(lang), ", "))
			}
			return nil
		},
	}
}
