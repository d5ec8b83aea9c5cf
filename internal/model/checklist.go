package model

// Criterion is one fixed rubric item rendered to curators as a checkbox.
// The catalogs below are reference data and never change at runtime.
type Criterion struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// ContextCriteria is the out-of-context qualification checklist applied to a
// claim's social-media post.
var ContextCriteria = []Criterion{
	{Key: "temporal_misattribution", Name: "Temporal Misattribution", Definition: "Does the content demonstrably shift the event's perceived timing to mislead context (e.g., via clear statements, timestamps, editing)?"},
	{Key: "geographical_misattribution", Name: "Geographical Misattribution", Definition: "Does the content explicitly claim or suggest an incorrect, yet plausible, location for the event?"},
	{Key: "person_misidentification", Name: "Person Misidentification", Definition: "Does the content directly name, label, or visually imply incorrect identities for individuals in a believable, misleading way?"},
	{Key: "contextual_misrepresentation", Name: "Contextual Misrepresentation", Definition: "Does the content explicitly frame the purpose, cause, or background of the event in a deceptive manner?"},
	{Key: "exaggeration_scale", Name: "Exaggeration (Scale)", Definition: "Does the content use specific numbers, comparisons, or visual framing to clearly amplify the event's impact slightly beyond reality?"},
	{Key: "exaggeration_urgency", Name: "Exaggeration (Urgency)", Definition: "Does the content use explicit time pressure language or editing pace to create false immediacy when unwarranted?"},
	{Key: "fabricated_consequences", Name: "Fabricated Consequences", Definition: "Does the content clearly state plausible outcomes or effects that are not shown or supported by evidence within the content?"},
	{Key: "misleading_intent", Name: "Misleading Intent", Definition: "Does the content clearly frame neutral or positive actions with commentary or visuals suggesting malicious intent?"},
	{Key: "misleading_emotional_framing", Name: "Misleading Emotional Framing", Definition: "Does the content introduce clearly emotionally charged language, music, or imagery unrelated to the core facts specifically to sway perception?"},
	{Key: "causal_misattribution", Name: "Causal Misattribution", Definition: "Does the content explicitly state or visually edit to show one event clearly causing another, when the link is incorrect or unproven, but plausible?"},
}

// EvidenceCriteria is the quality checklist applied to each evidence link.
var EvidenceCriteria = []Criterion{
	{Key: "author_expertise", Name: "Author Expertise", Definition: "Author possesses demonstrable, high-level, relevant expertise (e.g., recognized expert, relevant credentials, extensive experience) in the specific subject matter."},
	{Key: "source_reputation", Name: "Source Reputation", Definition: "Published by a highly reputable source with strong editorial standards (e.g., major int'l news org, IFCN signatory fact-checker, respected academic journal, official gov't body)."},
	{Key: "neutrality_fairness", Name: "Neutrality & Fairness", Definition: "Content is demonstrably objective, neutral in tone, and presents multiple perspectives fairly."},
	{Key: "fact_vs_opinion", Name: "Fact vs. Opinion", Definition: "Clearly distinguishes fact from opinion."},
	{Key: "purpose", Name: "Purpose", Definition: "Purpose is primarily informational."},
	{Key: "definitive_proof", Name: "Definitive Proof", Definition: "Evidence provides definitive proof (e.g., timestamped original footage, precise geolocation, official identification, multiple corroborating accounts, detailed description/footage of the same event)."},
	{Key: "direct_connection", Name: "Direct Connection", Definition: "This proof confirms or refutes the specific time, date, location, key actors/subjects, or core event narrative of the OOC (Out of Context) video event."},
	{Key: "source_transparency", Name: "Source Transparency", Definition: "Source clearly identifies author, provides contact info, discloses funding, cites evidence meticulously, has a clear corrections policy, and adheres to it."},
	{Key: "evidence_integrity", Name: "Evidence Integrity", Definition: "Evidence is the verified original, unedited, or significantly more complete footage/data, allowing direct comparison or assessment."},
	{Key: "fact_verifiability", Name: "Fact Verifiability", Definition: "Presents specific, independently verifiable facts that directly and unambiguously relate to (confirming or refuting) a core element of the OOC narrative."},
	{Key: "clarity_relevance", Name: "Clarity & Relevance", Definition: "Information date is clearly stated, current, and highly relevant to the specific timeframe of the event being verified."},
}

// EvidenceCriterionKeys returns the catalog keys in order.
func EvidenceCriterionKeys() []string {
	keys := make([]string, len(EvidenceCriteria))
	for i, c := range EvidenceCriteria {
		keys[i] = c.Key
	}
	return keys
}

// ContextCriterionKeys returns the catalog keys in order.
func ContextCriterionKeys() []string {
	keys := make([]string, len(ContextCriteria))
	for i, c := range ContextCriteria {
		keys[i] = c.Key
	}
	return keys
}

// NormalizeChecklist returns a checklist holding exactly the evidence catalog
// keys: missing keys default to false, unknown keys are discarded.
func NormalizeChecklist(checklist map[string]bool) map[string]bool {
	normalized := make(map[string]bool, len(EvidenceCriteria))
	for _, c := range EvidenceCriteria {
		normalized[c.Key] = checklist[c.Key]
	}
	return normalized
}
