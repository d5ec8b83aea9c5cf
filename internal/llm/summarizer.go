package llm

import (
	"fmt"
	"strings"

	"github.com/factdesk/factdesk/internal/model"
)

// BuildPrompt renders an entry into the drafting prompt. Only fields the
// curator filled in are included, so the model has nothing to embellish.
func BuildPrompt(e model.Entry) string {
	var sb strings.Builder

	sb.WriteString("Draft a short, neutral summary of this fact-check record.\n\n")

	if e.PolitifactHeadline != "" {
		fmt.Fprintf(&sb, "Fact-check headline: %s\n", e.PolitifactHeadline)
	}
	if e.PolitifactSubheadline != "" {
		fmt.Fprintf(&sb, "Fact-check subheadline: %s\n", e.PolitifactSubheadline)
	}
	if e.Rating != "" {
		fmt.Fprintf(&sb, "Rating: %s\n", e.Rating)
	}
	if e.SocialPlatform != "" {
		fmt.Fprintf(&sb, "Platform: %s\n", e.SocialPlatform)
	}
	if e.SocialText != "" {
		fmt.Fprintf(&sb, "\nPost content:\n%s\n", e.SocialText)
	}

	var flagged []string
	for _, c := range model.ContextCriteria {
		if e.ContextFlag(c.Key) {
			flagged = append(flagged, c.Name)
		}
	}
	if len(flagged) > 0 {
		fmt.Fprintf(&sb, "\nContext problems identified: %s\n", strings.Join(flagged, ", "))
	}

	if len(e.ExternalLinks) > 0 {
		sb.WriteString("\nEvidence (cite only these):\n")
		for _, link := range e.ExternalLinks {
			if link.URL == "" {
				continue
			}
			if link.Description != "" {
				fmt.Fprintf(&sb, "- %s (%s)\n", link.URL, link.Description)
			} else {
				fmt.Fprintf(&sb, "- %s\n", link.URL)
			}
		}
	}

	sb.WriteString("\nKeep it under 120 words. State the rating and why the video misleads, based only on the material above.")
	return sb.String()
}
