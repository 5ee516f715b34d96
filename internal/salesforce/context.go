// Package salesforce provides the Salesforce REST data client and the
// client-context middleware that authenticates inbound requests.
//
// Requests arrive pre-authenticated: the integration gateway injects an
// x-client-context header containing a base64-encoded JSON document with an
// org-scoped access token and the acting user's identity. This service never
// manages credentials itself.
package salesforce

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientContextHeader is the inbound header carrying the encoded client context.
const ClientContextHeader = "x-client-context"

const (
	contextKeyContext = "salesforceContext"
	contextKeyClient  = "salesforceClient"
)

// UserContext identifies the acting user on whose behalf the request runs.
type UserContext struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// ClientContext is the decoded x-client-context payload.
type ClientContext struct {
	AccessToken  string      `json:"accessToken"`
	APIVersion   string      `json:"apiVersion"`
	RequestID    string      `json:"requestId"`
	Namespace    string      `json:"namespace"`
	OrgID        string      `json:"orgId"`
	OrgDomainURL string      `json:"orgDomainUrl"`
	UserContext  UserContext `json:"userContext"`
}

// ParseClientContext decodes and validates the raw header value.
func ParseClientContext(raw string) (*ClientContext, error) {
	decoded, err := decodeBase64(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("decode client context: %w", err)
	}

	var cc ClientContext
	if err := json.Unmarshal(decoded, &cc); err != nil {
		return nil, fmt.Errorf("unmarshal client context: %w", err)
	}

	if cc.AccessToken == "" {
		return nil, fmt.Errorf("client context missing accessToken")
	}
	if cc.OrgDomainURL == "" {
		return nil, fmt.Errorf("client context missing orgDomainUrl")
	}
	if cc.UserContext.UserID == "" {
		return nil, fmt.Errorf("client context missing userContext.userId")
	}

	cc.OrgDomainURL = strings.TrimRight(cc.OrgDomainURL, "/")
	return &cc, nil
}

// decodeBase64 accepts both padded and unpadded standard encoding; some
// proxies strip the trailing padding from header values.
func decodeBase64(raw string) ([]byte, error) {
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(raw)
}

// Encode returns the header value for this context. Used by tests and
// local tooling to simulate the gateway.
func (cc *ClientContext) Encode() (string, error) {
	payload, err := json.Marshal(cc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// ContextFrom returns the client context attached by the middleware.
func ContextFrom(c *gin.Context) (*ClientContext, bool) {
	value, ok := c.Get(contextKeyContext)
	if !ok {
		return nil, false
	}
	cc, ok := value.(*ClientContext)
	return cc, ok
}

// ClientFrom returns the per-request data client attached by the middleware.
func ClientFrom(c *gin.Context) (*Client, bool) {
	value, ok := c.Get(contextKeyClient)
	if !ok {
		return nil, false
	}
	client, ok := value.(*Client)
	return client, ok
}
