// =============================================================================
// OCF Ledger Converter - Ledger JSON API Client
// =============================================================================
//
// Minimal client for the two ledger operations this layer needs:
//   - read one created contract by id          (POST /v1/fetch)
//   - submit a create command and wait for its
//     transaction tree                          (POST /v2/commands/submit-and-wait-for-transaction-tree)
//
// Requests are throttled by a token bucket. There are no retries; a failed
// request is returned to the caller.
//
// =============================================================================

package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

const (
	fetchPath  = "/v1/fetch"
	submitPath = "/v2/commands/submit-and-wait-for-transaction-tree"
)

// Reader reads created contracts by id.
type Reader interface {
	ReadContract(ctx context.Context, contractID string) (*Record, error)
}

// Submitter submits a create command and returns the raw transaction tree.
type Submitter interface {
	Submit(ctx context.Context, cmd *CreateCommand) (json.RawMessage, error)
}

// ClientConfig configures an HTTPClient.
type ClientConfig struct {
	BaseURL           string
	AccessToken       string
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
	// ActAs is the submitting party for create commands.
	ActAs string
}

// HTTPClient talks to the ledger JSON API.
type HTTPClient struct {
	baseURL string
	token   string
	actAs   string
	http    *http.Client
	limiter *rate.Limiter
}

// NewHTTPClient validates cfg and builds a client. A zero RequestsPerSecond
// disables throttling.
func NewHTTPClient(cfg ClientConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("ledger base_url is required")
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		actAs:   cfg.ActAs,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

type fetchRequest struct {
	ContractID string `json:"contractId"`
}

type fetchResponse struct {
	Status int     `json:"status"`
	Result *Record `json:"result"`
}

// ReadContract fetches one contract. A missing contract is a ContractError
// with RESULT_NOT_FOUND; an unparseable body is a ParseError with
// INVALID_RESPONSE.
func (c *HTTPClient) ReadContract(ctx context.Context, contractID string) (*Record, error) {
	body, status, err := c.post(ctx, fetchPath, fetchRequest{ContractID: contractID})
	if err != nil {
		return nil, fmt.Errorf("fetch contract %s: %w", contractID, err)
	}
	if status == http.StatusNotFound {
		return nil, validation.NewContractError(validation.CodeResultNotFound, contractID, "", "contract not found")
	}
	if status >= 300 {
		return nil, fmt.Errorf("fetch contract %s: ledger returned HTTP %d: %s", contractID, status, truncate(body))
	}

	var resp fetchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, validation.NewParseError("", validation.CodeInvalidResponse, truncate(body), fmt.Sprintf("fetch response: %v", err))
	}
	if resp.Result == nil {
		return nil, validation.NewContractError(validation.CodeResultNotFound, contractID, "", "contract not found")
	}
	if resp.Result.ContractID == "" {
		resp.Result.ContractID = contractID
	}
	return resp.Result, nil
}

type submitRequest struct {
	Commands  []map[string]any `json:"commands"`
	CommandID string           `json:"commandId"`
	ActAs     []string         `json:"actAs,omitempty"`
}

// Submit sends cmd as a single create command and returns the transaction
// tree of the resulting transaction.
func (c *HTTPClient) Submit(ctx context.Context, cmd *CreateCommand) (json.RawMessage, error) {
	req := submitRequest{
		Commands: []map[string]any{{
			"CreateCommand": map[string]any{
				"templateId":      cmd.TemplateID,
				"createArguments": cmd.Arguments,
			},
		}},
		CommandID: uuid.NewString(),
	}
	if c.actAs != "" {
		req.ActAs = []string{c.actAs}
	}

	body, status, err := c.post(ctx, submitPath, req)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", cmd.TemplateID, err)
	}
	if status >= 300 {
		return nil, fmt.Errorf("submit %s: ledger returned HTTP %d: %s", cmd.TemplateID, status, truncate(body))
	}
	if !json.Valid(body) {
		return nil, validation.NewParseError("", validation.CodeInvalidResponse, truncate(body), "submit response is not JSON")
	}
	return json.RawMessage(body), nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "..."
}
