package models

import "time"

// VocabularyItem is a saved word. Items are unique on the lowercased word
// text; saving an existing word is a no-op. The enrichment fields arrive
// later, when the AI backend finishes a word deep-dive.
type VocabularyItem struct {
	Word         string    `json:"word"`
	PartOfSpeech string    `json:"part_of_speech"`
	Definition   string    `json:"definition"`
	Example      string    `json:"example"`
	SavedAt      time.Time `json:"saved_at"`

	// Enrichment fields, empty until an enrichment job completes.
	Enrichment

	// Reserved spaced-repetition fields. Stored and exported but not read by
	// any scheduling logic.
	SRSLevel   int        `json:"srs_level"`
	NextReview *time.Time `json:"next_review,omitempty"`
}

// Enrichment holds the deep-dive fields the AI backend produces for a word.
type Enrichment struct {
	Etymology     string   `json:"etymology,omitempty"`
	DetailedDef   string   `json:"detailed_definition,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
	Collocations  []string `json:"collocations,omitempty"`
	Register      string   `json:"register,omitempty"`
	GrammarNote   string   `json:"grammar_note,omitempty"`
	WordFormation string   `json:"word_formation,omitempty"`
}

// VocabularyFilter narrows vocabulary listings.
type VocabularyFilter struct {
	PartOfSpeech string
	Search       string
	Limit        int
	Offset       int
}
