package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

const (
	NotionBaseURL = "https://api.notion.com"
	notionVersion = "2022-06-28"
	// maxPages bounds pagination of uncapped queries.
	maxPages = 20
)

type NotionClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewNotionClient(baseURL, token string, timeout time.Duration) (*NotionClient, error) {
	if token == "" {
		return nil, fmt.Errorf("notion token is required")
	}
	if baseURL == "" {
		baseURL = NotionBaseURL
	}
	return &NotionClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type dateCondition struct {
	OnOrAfter string `json:"on_or_after"`
}

type queryFilter struct {
	Property string        `json:"property"`
	Date     dateCondition `json:"date"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	Filter      *queryFilter `json:"filter,omitempty"`
	Sorts       []querySort  `json:"sorts,omitempty"`
	PageSize    int          `json:"page_size,omitempty"`
	StartCursor string       `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []domain.Record `json:"results"`
	HasMore    bool            `json:"has_more"`
	NextCursor *string         `json:"next_cursor"`
}

func newQueryRequest(q domain.Query) queryRequest {
	req := queryRequest{PageSize: q.PageSize}
	if q.Filter != nil {
		req.Filter = &queryFilter{
			Property: q.Filter.Property,
			Date:     dateCondition{OnOrAfter: domain.FormatDate(q.Filter.OnOrAfter)},
		}
	}
	for _, s := range q.Sorts {
		req.Sorts = append(req.Sorts, querySort{Property: s.Property, Direction: string(s.Direction)})
	}
	return req
}

// Query returns the records of a database in the order the service returns them. A query
// with a page size stops after the first page; otherwise the cursor is followed.
func (c *NotionClient) Query(ctx context.Context, q domain.Query) ([]domain.Record, error) {
	logger := zerolog.Ctx(ctx).With().Str("database", q.DatabaseID).Logger()

	req := newQueryRequest(q)
	var records []domain.Record
	for page := 0; page < maxPages; page++ {
		resp, err := c.queryPage(ctx, q.DatabaseID, req)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to query database")
			return nil, err
		}
		records = append(records, resp.Results...)

		if q.PageSize > 0 || !resp.HasMore || resp.NextCursor == nil {
			return records, nil
		}
		req.StartCursor = *resp.NextCursor
	}

	logger.Warn().Int("pages", maxPages).Msg("query truncated")
	return records, nil
}

func (c *NotionClient) queryPage(ctx context.Context, databaseID string, body queryRequest) (*queryResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion API error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("notion API %d: %s", resp.StatusCode, string(b))
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return &out, nil
}
