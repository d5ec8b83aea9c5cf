package model

// Rating is the verdict assigned to a fact-checked claim
type Rating string

const (
	RatingFullFlop    Rating = "full flop"
	RatingFalse       Rating = "false"
	RatingMostlyFalse Rating = "mostly false"
	RatingHalfTrue    Rating = "half true"
	RatingMostlyTrue  Rating = "mostly true"
	RatingTrue        Rating = "true"
	RatingUnrated     Rating = "unrated"
)

// Ratings lists every accepted rating value in display order
var Ratings = []Rating{
	RatingFullFlop,
	RatingFalse,
	RatingMostlyFalse,
	RatingHalfTrue,
	RatingMostlyTrue,
	RatingTrue,
	RatingUnrated,
}

// IsValid reports whether r is one of the fixed rating literals.
// The empty string is also accepted: it means no rating was selected yet.
func (r Rating) IsValid() bool {
	if r == "" {
		return true
	}
	for _, known := range Ratings {
		if r == known {
			return true
		}
	}
	return false
}

// Entry is one fact-check record: the claim, its rating, the social post
// carrying it, and the evidence collected for or against it.
// JSON field names match the on-disk dataset format.
type Entry struct {
	ID                    int            `json:"id"`
	PolitifactURL         string         `json:"politifact_url"`
	PolitifactHeadline    string         `json:"politifact_headline"`
	PolitifactSubheadline string         `json:"politifact_subheadline"`
	Rating                Rating         `json:"rating"`
	SocialLink            string         `json:"social_link"`
	SocialPlatform        string         `json:"social_platform"`
	SocialDuration        float64        `json:"social_duration"`
	SocialText            string         `json:"social_text"`
	ExternalLinks         []EvidenceLink `json:"external_links_info"`
	DownloadSuccess       bool           `json:"download_success"`
	DownloadMessage       string         `json:"download_message"`
	DrivePath             string         `json:"drive_path"`

	// Context-violation checklist, one flag per catalog criterion.
	// Stored flat in the dataset, keyed "ooc_<criterion key>".
	OOCTemporalMisattribution    bool `json:"ooc_temporal_misattribution"`
	OOCGeographicMisattribution  bool `json:"ooc_geographical_misattribution"`
	OOCPersonMisidentification   bool `json:"ooc_person_misidentification"`
	OOCContextMisrepresentation  bool `json:"ooc_contextual_misrepresentation"`
	OOCExaggerationScale         bool `json:"ooc_exaggeration_scale"`
	OOCExaggerationUrgency       bool `json:"ooc_exaggeration_urgency"`
	OOCFabricatedConsequences    bool `json:"ooc_fabricated_consequences"`
	OOCMisleadingIntent          bool `json:"ooc_misleading_intent"`
	OOCMisleadingEmotionalFrame  bool `json:"ooc_misleading_emotional_framing"`
	OOCCausalMisattribution      bool `json:"ooc_causal_misattribution"`
}

// EvidenceLink is a supporting or refuting reference attached to an Entry.
// The checklist maps evidence-quality criterion keys to the curator's
// assessment.
type EvidenceLink struct {
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Checklist   map[string]bool `json:"checklist"`
}

// ContextFlag returns the context-violation flag for the given criterion key.
func (e *Entry) ContextFlag(key string) bool {
	switch key {
	case "temporal_misattribution":
		return e.OOCTemporalMisattribution
	case "geographical_misattribution":
		return e.OOCGeographicMisattribution
	case "person_misidentification":
		return e.OOCPersonMisidentification
	case "contextual_misrepresentation":
		return e.OOCContextMisrepresentation
	case "exaggeration_scale":
		return e.OOCExaggerationScale
	case "exaggeration_urgency":
		return e.OOCExaggerationUrgency
	case "fabricated_consequences":
		return e.OOCFabricatedConsequences
	case "misleading_intent":
		return e.OOCMisleadingIntent
	case "misleading_emotional_framing":
		return e.OOCMisleadingEmotionalFrame
	case "causal_misattribution":
		return e.OOCCausalMisattribution
	}
	return false
}

// SetContextFlag sets the context-violation flag for the given criterion key.
// Unknown keys are ignored and reported via the return value.
func (e *Entry) SetContextFlag(key string, value bool) bool {
	switch key {
	case "temporal_misattribution":
		e.OOCTemporalMisattribution = value
	case "geographical_misattribution":
		e.OOCGeographicMisattribution = value
	case "person_misidentification":
		e.OOCPersonMisidentification = value
	case "contextual_misrepresentation":
		e.OOCContextMisrepresentation = value
	case "exaggeration_scale":
		e.OOCExaggerationScale = value
	case "exaggeration_urgency":
		e.OOCExaggerationUrgency = value
	case "fabricated_consequences":
		e.OOCFabricatedConsequences = value
	case "misleading_intent":
		e.OOCMisleadingIntent = value
	case "misleading_emotional_framing":
		e.OOCMisleadingEmotionalFrame = value
	case "causal_misattribution":
		e.OOCCausalMisattribution = value
	default:
		return false
	}
	return true
}
