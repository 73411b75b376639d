package models

// DictionaryEntry is one record of the parsed Apte dictionary
// (sanskrit_dictionary.json).
type DictionaryEntry struct {
	Sanskrit        string   `json:"sanskrit"`
	Gender          string   `json:"gender"`
	EnglishMeanings []string `json:"english_meanings"`
	HindiMeanings   []string `json:"hindi_meanings"`
}

// WordEntry is a word as returned by the random and search endpoints.
type WordEntry struct {
	Sanskrit           string   `json:"sanskrit"`
	Gender             string   `json:"gender"`
	EnglishMeaning     string   `json:"english_meaning"`
	HindiMeaning       string   `json:"hindi_meaning"`
	AllEnglishMeanings []string `json:"all_english_meanings,omitempty"`
	AllHindiMeanings   []string `json:"all_hindi_meanings,omitempty"`
}

// HasMoreMeanings reports whether the card needs an expand control
func (w *WordEntry) HasMoreMeanings() bool {
	return len(w.AllEnglishMeanings) > 1 || len(w.AllHindiMeanings) > 1
}

type StatsSnapshot struct {
	// nil when the endpoint did not report a total
	TotalWords         *int64           `json:"total_words,omitempty"`
	GenderDistribution map[string]int64 `json:"gender_distribution,omitempty"`
}

type RandomResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count,omitempty"`
	Words   []*WordEntry `json:"words,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type SearchResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count,omitempty"`
	Results []*WordEntry `json:"results,omitempty"`
	Error   string       `json:"error,omitempty"`
}
