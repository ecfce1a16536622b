package valueobject

// EligibilityResult is the outcome of eligibility evaluation. Messages
// accumulate every applicable decline and referral reason; evaluation never
// short-circuits. Referred is true when at least one referral condition
// fired; a referral alone does not flip Eligible.
type EligibilityResult struct {
	Eligible bool     `json:"is_eligible"`
	Referred bool     `json:"referred"`
	Messages []string `json:"messages,omitempty"`
}
