// Package sheets talks to an optional remote-spreadsheet web app that
// mirrors the three collections. Pushes are best-effort notifications:
// the response body is ignored by contract and failures are only logged.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"solotravel-backend/models"

	"go.uber.org/zap"
)

// ItemType names the remote tab a record belongs to. The wire names
// predate this backend and are kept for compatibility with the sheet.
type ItemType string

const (
	ItemTypeItinerary ItemType = "plane"
	ItemTypeExpense   ItemType = "spend"
	ItemTypeWallet    ItemType = "wallet"
)

type Action string

const (
	ActionSet    Action = "set"
	ActionDelete Action = "delete"
)

// SheetData is the full remote snapshot returned by a GET.
type SheetData struct {
	Plane  []models.Activity `json:"plane"`
	Spend  []models.Expense  `json:"spend"`
	Wallet []models.Ticket   `json:"wallet"`
}

type Syncer interface {
	Enabled() bool
	FetchAll(ctx context.Context) (*SheetData, error)
	// SyncItem fires a POST and forgets it. It never returns an error;
	// transport failures are logged and the app continues on local state.
	SyncItem(itemType ItemType, action Action, data interface{})
}

type Client struct {
	url string
}

func NewClient(url string) *Client {
	return &Client{url: url}
}

func (c *Client) Enabled() bool {
	return c.url != ""
}

func (c *Client) FetchAll(ctx context.Context) (*SheetData, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("sheet sync url not configured")
	}

	resp, err := executeGet(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sheet fetch failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sheet response: %w", err)
	}

	var data SheetData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding sheet response: %w", err)
	}
	return &data, nil
}

func (c *Client) SyncItem(itemType ItemType, action Action, data interface{}) {
	if !c.Enabled() {
		return
	}

	payload := map[string]interface{}{
		"action": action,
		"type":   itemType,
		"data":   data,
	}

	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			zap.L().Error("Failed to encode sync payload",
				zap.String("type", string(itemType)),
				zap.Error(err))
			return
		}

		resp, err := executePost(c.url, body)
		if err != nil {
			zap.L().Warn("Sheet sync push failed",
				zap.String("type", string(itemType)),
				zap.String("action", string(action)),
				zap.Error(err))
			return
		}
		// Response body is not consumed by contract.
		resp.Body.Close()

		zap.L().Debug("Sheet sync push sent",
			zap.String("type", string(itemType)),
			zap.String("action", string(action)),
			zap.Int("status", resp.StatusCode))
	}()
}
