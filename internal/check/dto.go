package check

import "time"

type RuleResponse struct {
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	Pattern     string `json:"pattern,omitempty"`
	Description string `json:"description"`
}

type ListRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// CheckRequest carries one value. An empty value is allowed and simply fails every rule.
type CheckRequest struct {
	Rule  string `json:"rule" binding:"required,max=50"`
	Value string `json:"value"`
}

type CheckResponse struct {
	Rule  string `json:"rule"`
	Valid bool   `json:"valid"`
}

type BatchCheckRequest struct {
	Items []CheckRequest `json:"items" binding:"required,min=1,dive"`
}

type BatchCheckResponse struct {
	Results []CheckResponse `json:"results"`
	Passed  int             `json:"passed"`
	Failed  int             `json:"failed"`
}

type HistoryItem struct {
	ID        string    `json:"id"`
	Rule      string    `json:"rule"`
	Valid     bool      `json:"valid"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
