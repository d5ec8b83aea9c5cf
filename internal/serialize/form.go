// Package serialize converts between wire payloads and the ordered Entry
// dataset, and owns dataset normalization.
package serialize

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/platform"
)

// Flat field-name convention for form-encoded fallback payloads:
//
//	data[<entry>][<field>]
//	data[<entry>][external_links_info][<link>][<field>]
//	data[<entry>][external_links_info][<link>][checklist][<criterion>]
var (
	scalarKeyRe    = regexp.MustCompile(`^data\[(\d+)\]\[([A-Za-z0-9_]+)\]$`)
	linkKeyRe      = regexp.MustCompile(`^data\[(\d+)\]\[external_links_info\]\[(\d+)\]\[(url|description)\]$`)
	checklistKeyRe = regexp.MustCompile(`^data\[(\d+)\]\[external_links_info\]\[(\d+)\]\[checklist\]\[([A-Za-z0-9_]+)\]$`)
)

const contextFlagPrefix = "ooc_"

// ParseForm reconstructs the nested entry list from flat form-encoded field
// names. Nesting comes purely from the field names; entry and link order
// follow the numeric indices. Unknown fields are ignored, numeric fields that
// fail to parse default to zero.
func ParseForm(values url.Values) []model.Entry {
	entries := make(map[int]*model.Entry)
	links := make(map[int]map[int]*model.EvidenceLink)

	entryAt := func(i int) *model.Entry {
		if e, ok := entries[i]; ok {
			return e
		}
		e := &model.Entry{ID: -1}
		entries[i] = e
		return e
	}
	linkAt := func(i, j int) *model.EvidenceLink {
		if links[i] == nil {
			links[i] = make(map[int]*model.EvidenceLink)
		}
		if l, ok := links[i][j]; ok {
			return l
		}
		l := &model.EvidenceLink{Checklist: make(map[string]bool)}
		links[i][j] = l
		return l
	}

	for key, fieldValues := range values {
		if len(fieldValues) == 0 {
			continue
		}
		value := fieldValues[0]

		if m := checklistKeyRe.FindStringSubmatch(key); m != nil {
			linkAt(cast.ToInt(m[1]), cast.ToInt(m[2])).Checklist[m[3]] = cast.ToBool(value)
			continue
		}
		if m := linkKeyRe.FindStringSubmatch(key); m != nil {
			link := linkAt(cast.ToInt(m[1]), cast.ToInt(m[2]))
			if m[3] == "url" {
				link.URL = value
			} else {
				link.Description = value
			}
			continue
		}
		if m := scalarKeyRe.FindStringSubmatch(key); m != nil {
			setScalarField(entryAt(cast.ToInt(m[1])), m[2], value)
		}
	}

	ordered := make([]model.Entry, 0, len(entries))
	for _, i := range sortedKeys(entries) {
		entry := entries[i]
		for _, j := range sortedKeys(links[i]) {
			entry.ExternalLinks = append(entry.ExternalLinks, *links[i][j])
		}
		ordered = append(ordered, *entry)
	}
	return ordered
}

func setScalarField(e *model.Entry, field, value string) {
	switch field {
	case "id":
		id, err := cast.ToIntE(value)
		if err != nil {
			id = -1
		}
		e.ID = id
	case "politifact_url":
		e.PolitifactURL = value
	case "politifact_headline":
		e.PolitifactHeadline = value
	case "politifact_subheadline":
		e.PolitifactSubheadline = value
	case "rating":
		e.Rating = model.Rating(value)
	case "social_link":
		e.SocialLink = value
	case "social_platform":
		e.SocialPlatform = value
	case "social_duration":
		e.SocialDuration = cast.ToFloat64(value)
	case "social_text":
		e.SocialText = value
	case "download_success":
		e.DownloadSuccess = cast.ToBool(value)
	case "download_message":
		e.DownloadMessage = value
	case "drive_path":
		e.DrivePath = value
	default:
		if key, ok := strings.CutPrefix(field, contextFlagPrefix); ok {
			e.SetContextFlag(key, cast.ToBool(value))
		}
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Normalize prepares a dataset for persistence:
//
//   - evidence links survive only with a non-empty trimmed URL
//   - checklists are reduced to exactly the catalog keys
//   - the platform label is re-derived from the social link
//   - non-finite durations collapse to 0
//   - invalid ratings collapse to unset
//   - IDs become the zero-based dataset position, discarding prior values
func Normalize(entries []model.Entry) []model.Entry {
	normalized := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		kept := make([]model.EvidenceLink, 0, len(entry.ExternalLinks))
		for _, link := range entry.ExternalLinks {
			link.URL = strings.TrimSpace(link.URL)
			if link.URL == "" {
				continue
			}
			link.Description = strings.TrimSpace(link.Description)
			link.Checklist = model.NormalizeChecklist(link.Checklist)
			kept = append(kept, link)
		}
		entry.ExternalLinks = kept

		entry.SocialPlatform = platform.Detect(entry.SocialLink)
		if math.IsNaN(entry.SocialDuration) || math.IsInf(entry.SocialDuration, 0) {
			entry.SocialDuration = 0
		}
		if !entry.Rating.IsValid() {
			entry.Rating = ""
		}

		normalized = append(normalized, entry)
	}

	for i := range normalized {
		normalized[i].ID = i
	}
	return normalized
}
