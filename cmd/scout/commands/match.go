package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contact-scout/internal/contactfile"
	"contact-scout/internal/match"
	"contact-scout/internal/report"
	"contact-scout/internal/search"
	"contact-scout/internal/service"
)

// match --contact file [--candidates file]: score candidates against a
// contact and print a Markdown report. Without --candidates the search
// endpoint supplies the candidate list.
func matchCmd() *cobra.Command {
	var (
		contactPath    string
		candidatesPath string
		endpoint       string
		top            int
		minScore       int
		outputPath     string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score candidate profiles against a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			contact, err := contactfile.LoadContact(contactPath)
			if err != nil {
				return fmt.Errorf("failed to load contact: %w", err)
			}

			matcher, err := match.New(service.MatcherConfig(cfg.Matching))
			if err != nil {
				return err
			}

			var matches []match.Match
			if candidatesPath != "" {
				candidates, err := contactfile.LoadCandidates(candidatesPath)
				if err != nil {
					return fmt.Errorf("failed to load candidates: %w", err)
				}
				matches = matcher.Match(contact, candidates)
			} else {
				if endpoint != "" {
					cfg.Search.Endpoint = endpoint
				}
				if cfg.Search.Endpoint == "" {
					return fmt.Errorf("no candidate source: pass --candidates or set --endpoint / SEARCH_ENDPOINT")
				}

				client := search.NewClient(cfg.Search)
				lookup := service.NewLookupService(client, nil, matcher)
				result, err := lookup.Lookup(cmd.Context(), contact)
				if err != nil {
					return err
				}
				matches = result.Matches
			}

			rendered := report.Render(contact, matches, report.Options{Top: top, MinScore: minScore})

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Printf("report written to %s\n", outputPath)
				return nil
			}

			fmt.Print(rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contactPath, "contact", "c", "", "contact file (.vcf, .vcard or .json)")
	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "candidate list JSON file (skips live search)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "search endpoint base URL (overrides SEARCH_ENDPOINT)")
	cmd.Flags().IntVar(&top, "top", 0, "limit the report to the N best matches (0 = all)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "drop matches scoring below this")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	_ = cmd.MarkFlagRequired("contact")
	return cmd
}
