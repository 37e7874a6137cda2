package schemas

// Requirements is the four-bucket extraction result produced once per
// conversation. It is read-only after the extractor returns it.
type Requirements struct {
	Functional        []string        `json:"functional_requirements"`
	NonFunctional     []string        `json:"non_functional_requirements"`
	Constraints       []string        `json:"constraints"`
	BusinessRules     []string        `json:"business_rules"`
	QualityAttributes map[string]bool `json:"quality_attributes"`
	Entities          []string        `json:"extracted_entities"`
	Confidence        float64         `json:"confidence_score"`
}

// Total returns the number of extracted requirement strings across the
// functional and non-functional buckets.
func (r Requirements) Total() int {
	return len(r.Functional) + len(r.NonFunctional)
}
