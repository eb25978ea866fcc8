package render

import (
	"encoding/json"
	"fmt"

	"github.com/chriscorrea/skim/internal/analysis"
)

type jsonReport struct {
	Source     string              `json:"source"`
	Type       string              `json:"type"`
	Lines      int                 `json:"lines"`
	Words      int                 `json:"words"`
	Characters int                 `json:"characters"`
	Tokens     *int                `json:"tokens,omitempty"`
	Fallback   bool                `json:"fallback,omitempty"`
	Statistics analysis.Statistics `json:"statistics"`
	Insights   []string            `json:"insights"`
}

// JSON renders the report as an indented JSON object. Statistics keep their
// extraction order.
func JSON(r Report) (string, error) {
	out := jsonReport{
		Source:     r.Source,
		Type:       r.Summary.Kind.String(),
		Lines:      r.Summary.Lines,
		Words:      r.Summary.Words,
		Characters: r.Summary.Chars,
		Fallback:   r.Summary.Fallback,
		Statistics: r.Summary.Statistics,
		Insights:   r.Summary.Insights,
	}
	if r.ShowTokens {
		tokens := r.Tokens
		out.Tokens = &tokens
	}
	if out.Insights == nil {
		out.Insights = []string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode summary as JSON: %w", err)
	}
	return string(data) + "\n", nil
}
