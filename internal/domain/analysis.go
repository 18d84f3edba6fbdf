package domain

// SentenceAnalysis is the structured result of a single-sentence grammar
// check. A section missing from the model output leaves its field empty.
type SentenceAnalysis struct {
	Corrected   string `json:"corrected"`
	Score       string `json:"score"`
	Explanation string `json:"explanation"`
}
