// Package report renders ranked match results as Markdown. Filtering
// lives here rather than in the matcher, which always returns the full
// ranked list.
package report

import (
	"fmt"
	"strings"

	"contact-scout/internal/match"
)

// Options controls which matches the report includes.
type Options struct {
	// Top limits the report to the N highest-scoring matches. Zero or
	// negative means no limit.
	Top int
	// MinScore drops matches scoring below it before Top is applied.
	MinScore int
}

// Filter applies MinScore then Top to an already ranked match list.
func Filter(matches []match.Match, opts Options) []match.Match {
	kept := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Score < opts.MinScore {
			continue
		}
		kept = append(kept, m)
	}
	if opts.Top > 0 && len(kept) > opts.Top {
		kept = kept[:opts.Top]
	}
	return kept
}

// Render produces a Markdown report for the contact's ranked matches.
func Render(contact *match.Contact, matches []match.Match, opts Options) string {
	kept := Filter(matches, opts)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Match Report: %s\n\n", contact.FullName)

	if len(kept) == 0 {
		fmt.Fprintf(&sb, "Scored %d candidate(s); none met the report criteria.\n", len(matches))
		return sb.String()
	}

	fmt.Fprintf(&sb, "Scored %d candidate(s); showing %d.\n\n", len(matches), len(kept))

	for i, m := range kept {
		fmt.Fprintf(&sb, "## %d. %s (%d points, %s)\n\n", i+1, m.Candidate.Name, m.Score, m.Confidence)
		fmt.Fprintf(&sb, "- URL: %s\n", m.Candidate.URL)
		if m.Candidate.Company != "" {
			fmt.Fprintf(&sb, "- Company: %s\n", m.Candidate.Company)
		}
		if m.Candidate.Location != "" {
			fmt.Fprintf(&sb, "- Location: %s\n", m.Candidate.Location)
		}
		if m.Candidate.Headline != "" {
			fmt.Fprintf(&sb, "- Headline: %s\n", m.Candidate.Headline)
		}
		sb.WriteString("\n")

		sb.WriteString("Why:\n\n")
		for _, reason := range m.Reasons {
			fmt.Fprintf(&sb, "- %s\n", reason)
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
