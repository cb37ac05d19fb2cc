package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-haiku-20240307"
	maxTokens  = 1024
)

// Suggestion is one structured proposal returned by the advisor. Proposals
// are opaque to the core: a human must approve them before the apply step
// routes them through the regular entity operations.
type Suggestion struct {
	Kind     string          `json:"kind"` // "reassign_task" | "restock_supply"
	TargetID string          `json:"targetID"`
	StaffID  string          `json:"staffID,omitempty"`  // For reassign_task
	Quantity decimal.Decimal `json:"quantity,omitempty"` // For restock_supply
	Reason   string          `json:"reason"`
}

// Snapshot is the farm state sent to the advisor for analysis.
type Snapshot struct {
	Tasks    []TaskSummary   `json:"tasks"`
	Staff    []StaffSummary  `json:"staff"`
	Supplies []SupplySummary `json:"supplies"`
}

type TaskSummary struct {
	TaskID        string `json:"taskID"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	ResponsibleID string `json:"responsibleID"`
	Progress      int    `json:"progress"`
}

type StaffSummary struct {
	StaffID        string `json:"staffID"`
	Name           string `json:"name"`
	EmploymentType string `json:"employmentType"`
	OpenTasks      int    `json:"openTasks"`
}

type SupplySummary struct {
	SupplyID     string          `json:"supplyID"`
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	InitialStock decimal.Decimal `json:"initialStock"`
}

// Client defines the advisor contract.
type Client interface {
	Suggest(ctx context.Context, snapshot Snapshot) ([]Suggestion, error)
}

type advisorClient struct {
	httpClient *resty.Client
}

// NewClient creates a configured advisor client.
func NewClient(apiKey string) Client {
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	return &advisorClient{httpClient: client}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

const systemPrompt = `You are an operations advisor for a small farm. You receive a JSON snapshot of open tasks, staff and supply stock levels.

Propose at most 5 actions. Allowed kinds:
- "reassign_task": move a task (targetID) to a less loaded staff member (staffID).
- "restock_supply": order more of a supply (targetID) whose stock is low relative to its initial stock; set "quantity".

RULES:
- Output ONLY a JSON array of objects {"kind", "targetID", "staffID", "quantity", "reason"}.
- "reason" must be one short sentence in Spanish.
- Propose nothing when the snapshot looks healthy; an empty array is a valid answer.`

func (c *advisorClient) Suggest(ctx context.Context, snapshot Snapshot) ([]Suggestion, error) {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []message{
			{Role: "user", Content: string(snapshotJSON)},
			// Prefill the opening bracket to force a bare JSON array
			{Role: "assistant", Content: "["},
		},
	}

	var respBody messageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)

	if err != nil {
		return nil, fmt.Errorf("advisor api call: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("advisor api error: %s", resp.String())
	}
	if len(respBody.Content) == 0 {
		return nil, fmt.Errorf("empty response from advisor")
	}

	responseText := "[" + respBody.Content[0].Text
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(responseText), &suggestions); err != nil {
		return nil, fmt.Errorf("unmarshal advisor response: %w (response was: %s)", err, responseText)
	}
	return suggestions, nil
}
