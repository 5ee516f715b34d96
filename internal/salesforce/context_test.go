package salesforce

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func testClientContext() *ClientContext {
	return &ClientContext{
		AccessToken:  "00Dxx!token",
		APIVersion:   "v62.0",
		RequestID:    "req-123",
		OrgID:        "00Dxx0000000001",
		OrgDomainURL: "https://example.my.salesforce.com",
		UserContext: UserContext{
			UserID:   "005xx000000001",
			Username: "quote-bot@example.com",
		},
	}
}

func TestParseClientContextRoundTrip(t *testing.T) {
	encoded, err := testClientContext().Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cc, err := ParseClientContext(encoded)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cc.AccessToken != "00Dxx!token" {
		t.Fatalf("expected access token to survive the round trip, got %q", cc.AccessToken)
	}
	if cc.OrgDomainURL != "https://example.my.salesforce.com" {
		t.Fatalf("unexpected org domain %q", cc.OrgDomainURL)
	}
	if cc.UserContext.UserID != "005xx000000001" {
		t.Fatalf("unexpected user id %q", cc.UserContext.UserID)
	}
}

func TestParseClientContextTrimsTrailingSlash(t *testing.T) {
	cc := testClientContext()
	cc.OrgDomainURL = "https://example.my.salesforce.com/"
	encoded, err := cc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	parsed, err := ParseClientContext(encoded)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.HasSuffix(parsed.OrgDomainURL, "/") {
		t.Fatalf("expected trailing slash to be trimmed, got %q", parsed.OrgDomainURL)
	}
}

func TestParseClientContextAcceptsUnpaddedBase64(t *testing.T) {
	encoded, err := testClientContext().Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	stripped := strings.TrimRight(encoded, "=")

	if _, err := ParseClientContext(stripped); err != nil {
		t.Fatalf("expected unpadded payload to parse, got %v", err)
	}
}

func TestParseClientContextRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"not base64":  "%%%not-base64%%%",
		"not json":    base64.StdEncoding.EncodeToString([]byte("plain text")),
		"json object": base64.StdEncoding.EncodeToString([]byte(`"just a string"`)),
	}
	for name, input := range cases {
		if _, err := ParseClientContext(input); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestParseClientContextRequiresCoreFields(t *testing.T) {
	missingToken := testClientContext()
	missingToken.AccessToken = ""

	missingOrg := testClientContext()
	missingOrg.OrgDomainURL = ""

	missingUser := testClientContext()
	missingUser.UserContext.UserID = ""

	for name, cc := range map[string]*ClientContext{
		"access token": missingToken,
		"org domain":   missingOrg,
		"user id":      missingUser,
	} {
		encoded, err := cc.Encode()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if _, err := ParseClientContext(encoded); err == nil {
			t.Fatalf("expected missing %s to be rejected", name)
		}
	}
}

func TestParseClientContextKeepsUnknownFields(t *testing.T) {
	payload := map[string]interface{}{
		"accessToken":  "token",
		"orgDomainUrl": "https://org.example.com",
		"orgId":        "00D1",
		"futureField":  "ignored",
		"userContext":  map[string]interface{}{"userId": "005A", "username": "u@example.com"},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	cc, err := ParseClientContext(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("expected unknown fields to be ignored, got %v", err)
	}
	if cc.OrgID != "00D1" {
		t.Fatalf("unexpected org id %q", cc.OrgID)
	}
}
