// sheet builds a character from flags and prints the recalculated sheet.
// Useful for eyeballing engine output against the printed rulebook.
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hearthforge/pf2-builder/internal/config"
	char "github.com/hearthforge/pf2-builder/internal/domain/character"
	"github.com/hearthforge/pf2-builder/internal/domain/rulebook/pf2e"
	"github.com/hearthforge/pf2-builder/internal/domain/shared"
	charsvc "github.com/hearthforge/pf2-builder/internal/services/character"
	"github.com/hearthforge/pf2-builder/internal/services/recalc"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("sheet: %v", err)
	}
}

func rootCmd() *cobra.Command {
	var (
		name       string
		ancestry   string
		background string
		class      string
		level      int
		feats      []string
	)

	cmd := &cobra.Command{
		Use:          "sheet",
		Short:        "Build a character and print its derived statistics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err == nil {
				log.Println("Loaded .env file")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			client := pf2e.NewStaticClient()
			engine := recalc.NewEngine(&recalc.Config{
				Client:         client,
				BonusLanguages: cfg.Engine.BonusLanguages,
			})
			svc := charsvc.NewService(&charsvc.ServiceConfig{
				Client: client,
				Engine: engine,
			})

			ctx := cmd.Context()
			created, err := svc.CreateCharacter(ctx, &charsvc.CreateCharacterInput{
				Name:         name,
				AncestryID:   ancestry,
				BackgroundID: background,
				ClassID:      class,
			})
			if err != nil {
				return err
			}
			c := created.Character

			if level != 1 {
				out, err := svc.SetLevel(ctx, &charsvc.SetLevelInput{Character: c, Level: level})
				if err != nil {
					return err
				}
				c = out.Character
			}

			for _, featID := range feats {
				out, err := svc.AddFeat(ctx, &charsvc.AddFeatInput{
					Character: c,
					FeatID:    featID,
					Level:     c.Level,
				})
				if err != nil {
					return err
				}
				if !out.Decision.Allowed {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped %s: %s\n", featID, out.Decision.Reason)
					continue
				}
				c = out.Character
			}

			printSheet(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Sample Character", "character name")
	cmd.Flags().StringVar(&ancestry, "ancestry", "human", "ancestry id")
	cmd.Flags().StringVar(&background, "background", "soldier", "background id")
	cmd.Flags().StringVar(&class, "class", "fighter", "class id")
	cmd.Flags().IntVar(&level, "level", 1, "character level")
	cmd.Flags().StringSliceVar(&feats, "feat", nil, "feat id to take at the current level (repeatable)")
	return cmd
}

func printSheet(cmd *cobra.Command, c *char.Character) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%s  (level %d %s / %s / %s)\n", c.Name, c.Level, c.AncestryID, c.BackgroundID, c.ClassID)
	fmt.Fprintf(w, "HP %d/%d  Speed %d ft  Perception %s\n",
		c.HitPoints.Current, c.HitPoints.Max, c.Speed.Land, c.Perception)

	for _, a := range shared.Abilities {
		fmt.Fprintf(w, "  %s %2d (%+d)", a, c.AbilityScores[a], c.AbilityModifier(a))
	}
	fmt.Fprintln(w)

	for _, save := range shared.Saves {
		fmt.Fprintf(w, "  %s: %s", save, c.Saves[save])
	}
	fmt.Fprintln(w)

	trained := make([]string, 0, len(c.Skills))
	for skill, rank := range c.Skills {
		if rank > shared.RankUntrained {
			trained = append(trained, fmt.Sprintf("%s (%s)", skill, rank))
		}
	}
	sort.Strings(trained)
	for _, line := range trained {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if len(c.Languages) > 0 {
		fmt.Fprintf(w, "Languages: %v\n", c.Languages)
	}
}
