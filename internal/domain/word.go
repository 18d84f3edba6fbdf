package domain

// WordEntry is one vocabulary item of the daily words list.
type WordEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	Relevance  string `json:"relevance"`
	Tip        string `json:"tip"`
}
