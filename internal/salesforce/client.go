package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quote_pdf_backend/platform/apperr"
	"quote_pdf_backend/platform/config"
	"quote_pdf_backend/platform/logger"
)

// Record is one result row from a SOQL query: a mapping from field name to
// value. Nested references (e.g. Account.Name) arrive as nested objects.
type Record map[string]interface{}

// StringField returns the named field as a string, or "" when the field is
// absent, null, or not a string.
func (r Record) StringField(field string) string {
	value, ok := r[field]
	if !ok || value == nil {
		return ""
	}
	text, _ := value.(string)
	return text
}

// QueryResult is the decoded response of a SOQL query.
type QueryResult struct {
	TotalSize int      `json:"totalSize"`
	Done      bool     `json:"done"`
	Records   []Record `json:"records"`
}

// SaveResult is the decoded response of a record create call.
type SaveResult struct {
	ID      string        `json:"id"`
	Success bool          `json:"success"`
	Errors  []interface{} `json:"errors"`
}

// apiError is one entry of the error array Salesforce returns on non-2xx.
type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// Client executes queries and record writes against one org, authenticated
// with one request's access token. Build a fresh client per request from the
// client context; clients must not be shared across requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	token      string
	userID     string
	log        *logger.Logger
}

// NewClient creates a data client for the org and token in the client
// context. The context's apiVersion wins over the configured default.
func NewClient(cc *ClientContext, cfg config.SalesforceConfig, log *logger.Logger) *Client {
	version := strings.TrimPrefix(cc.APIVersion, "v")
	if version == "" {
		version = cfg.GetSalesforceAPIVersion()
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetSalesforceTimeout()},
		baseURL:    cc.OrgDomainURL,
		apiVersion: version,
		token:      cc.AccessToken,
		userID:     cc.UserContext.UserID,
		log:        log,
	}
}

// BaseURL returns the org domain URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserID returns the calling user's record ID.
func (c *Client) UserID() string {
	return c.userID
}

// Query executes a SOQL query and returns the matching records in store order.
func (c *Client) Query(ctx context.Context, soql string) (*QueryResult, error) {
	reqURL := fmt.Sprintf("%s/services/data/v%s/query?q=%s", c.baseURL, c.apiVersion, url.QueryEscape(soql))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "create query request", err).WithOp("salesforce.Query")
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError("query", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Salesforce query failed", err).WithOp("salesforce.Query")
	}
	defer resp.Body.Close()

	c.logCall("query", resp.StatusCode, start)

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiFailure("salesforce.Query", resp)
	}

	var result QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "decode query response", err).WithOp("salesforce.Query")
	}
	return &result, nil
}

// Create inserts a new record of the named sobject type and returns its ID.
func (c *Client) Create(ctx context.Context, sobject string, fields map[string]interface{}) (*SaveResult, error) {
	reqURL := fmt.Sprintf("%s/services/data/v%s/sobjects/%s", c.baseURL, c.apiVersion, url.PathEscape(sobject))

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "encode "+sobject+" payload", err).WithOp("salesforce.Create")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "create "+sobject+" request", err).WithOp("salesforce.Create")
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError("create "+sobject, err)
		return nil, apperr.Wrap(apperr.KindInternal, "Salesforce create failed", err).WithOp("salesforce.Create")
	}
	defer resp.Body.Close()

	c.logCall("create "+sobject, resp.StatusCode, start)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, c.apiFailure("salesforce.Create", resp)
	}

	var result SaveResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "decode create response", err).WithOp("salesforce.Create")
	}
	if !result.Success || result.ID == "" {
		return nil, apperr.Internal(fmt.Sprintf("Salesforce rejected %s create", sobject)).WithOp("salesforce.Create")
	}
	return &result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
}

// apiFailure converts a non-2xx Salesforce response into a domain error,
// keeping the API's own message when it can be decoded.
func (c *Client) apiFailure(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := fmt.Sprintf("Salesforce API returned %d", resp.StatusCode)
	var apiErrs []apiError
	if err := json.Unmarshal(body, &apiErrs); err == nil && len(apiErrs) > 0 && apiErrs[0].Message != "" {
		message = fmt.Sprintf("Salesforce API returned %d: %s (%s)", resp.StatusCode, apiErrs[0].Message, apiErrs[0].ErrorCode)
	}

	return apperr.Internal(message).WithOp(op)
}

func (c *Client) logCall(operation string, status int, start time.Time) {
	if c.log != nil {
		c.log.RemoteCall("salesforce", operation, status, float64(time.Since(start).Milliseconds()))
	}
}

func (c *Client) logError(operation string, err error) {
	if c.log != nil {
		c.log.RemoteCallError("salesforce", operation, err)
	}
}
