package dto

import "github.com/fincaops/fincaops/pkg/clients/advisor"

// SuggestionsResponse wraps the advisor's structured proposals. They are
// never applied automatically; the client must POST an explicit apply.
type SuggestionsResponse struct {
	Suggestions []advisor.Suggestion `json:"suggestions"`
}

// ApplySuggestionRequest routes one human-approved proposal through the
// regular entity operations.
type ApplySuggestionRequest struct {
	Suggestion advisor.Suggestion `json:"suggestion" binding:"required"`
}
