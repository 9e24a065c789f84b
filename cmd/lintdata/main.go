// lintdata checks the rules content for broken references and rule entries
// the engine would silently ignore.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hearthforge/pf2-builder/internal/config"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/services/validation"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("lintdata: %v", err)
	}
}

func rootCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lintdata",
		Short: "Lint rules content for referential integrity",
		Long: `Checks every feat, item and class in the content source for broken
references: grants of unknown feats or spells, unknown skills, and rule
entries with keys the engine does not understand.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			if err := godotenv.Load(); err == nil {
				log.Println("Loaded .env file")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("strict") {
				cfg.Lint.Strict = strict
			}

			svc := validation.NewService(&validation.Config{
				Client: pf2e.NewStaticClient(),
			})

			out, err := svc.LintContent(cmd.Context())
			if err != nil {
				return err
			}

			for _, issue := range out.Issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d issue(s)\n", len(out.Issues))

			if out.HasErrors() || (cfg.Lint.Strict && len(out.Issues) > 0) {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")
	return cmd
}
