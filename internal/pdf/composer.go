package pdf

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"
)

// Built-in template names selectable per request.
const (
	TemplateStandard     = "standard"
	TemplateProfessional = "professional"
	TemplateMinimal      = "minimal"
)

const placeholderNA = "N/A"

// ComposeOptions carries the per-request formatting choices for one document.
type ComposeOptions struct {
	TemplateName string
	IncludeTerms bool
	CustomHeader string
	CustomFooter string
	GeneratedAt  time.Time
}

// TemplateInfo describes one built-in template for the listing endpoint.
type TemplateInfo struct {
	Name        string
	Description string
	IsDefault   bool
}

// Templates returns the built-in template set in a stable order.
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{Name: TemplateStandard, Description: "Clean layout with brand-blue accents and zebra-striped line items", IsDefault: true},
		{Name: TemplateProfessional, Description: "Formal serif layout with a dark navy palette", IsDefault: false},
		{Name: TemplateMinimal, Description: "Compact monochrome layout with rule lines only", IsDefault: false},
	}
}

// termsClauses is the fixed terms-and-conditions block appended when
// includeTerms is set. The clauses are not configurable at runtime.
var termsClauses = [5]string{
	"This quote is valid for 30 days from the date of issue.",
	"All prices are exclusive of applicable taxes unless stated otherwise.",
	"Payment is due within 30 days of the invoice date.",
	"Delivery timelines are estimates and subject to product availability.",
	"This quote is governed by the provider's standard terms of service.",
}

// ComposeQuoteHTML maps an Opportunity record, its ordered line items and the
// formatting options to a complete, self-contained HTML document. It performs
// no I/O; every interpolated record value is HTML-escaped.
func ComposeQuoteHTML(opportunity map[string]interface{}, lineItems []map[string]interface{}, opts ComposeOptions) string {
	oppName := stringField(opportunity, "Name")
	quoteDate := opts.GeneratedAt.Format("January 02, 2006")

	var b strings.Builder
	b.Grow(4096)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "<title>Quote for %s</title>\n", html.EscapeString(oppName))
	b.WriteString("<style>\n")
	b.WriteString(templateCSS(opts.TemplateName))
	b.WriteString("</style>\n</head>\n<body>\n")

	// Header
	b.WriteString("<div class=\"header\">\n")
	fmt.Fprintf(&b, "<h1>Quote for %s</h1>\n", html.EscapeString(oppName))
	fmt.Fprintf(&b, "<p><strong>Quote Date:</strong> %s</p>\n", quoteDate)
	if opts.CustomHeader != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(opts.CustomHeader))
	}
	b.WriteString("</div>\n")

	// Opportunity summary
	b.WriteString("<div class=\"meta-info\">\n")
	fmt.Fprintf(&b, "<p><strong>Opportunity ID:</strong> %s</p>\n", html.EscapeString(stringField(opportunity, "Id")))
	fmt.Fprintf(&b, "<p><strong>Account:</strong> %s</p>\n", html.EscapeString(accountName(opportunity)))
	fmt.Fprintf(&b, "<p><strong>Stage:</strong> %s</p>\n", html.EscapeString(stringField(opportunity, "StageName")))
	fmt.Fprintf(&b, "<p><strong>Expected Close Date:</strong> %s</p>\n", html.EscapeString(stringField(opportunity, "CloseDate")))
	fmt.Fprintf(&b, "<p><strong>Opportunity Amount:</strong> %s</p>\n", formatCurrency(numberField(opportunity, "Amount")))
	b.WriteString("</div>\n")

	// Line items
	b.WriteString("<h2>Quote Line Items</h2>\n<table>\n<thead>\n<tr>\n")
	b.WriteString("<th>Description</th>\n<th style=\"text-align: center;\">Quantity</th>\n")
	b.WriteString("<th style=\"text-align: right;\">Unit Price</th>\n<th style=\"text-align: right;\">Total</th>\n")
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	var total float64
	if len(lineItems) == 0 {
		b.WriteString("<tr><td colspan=\"4\" style=\"text-align: center; color: #666;\">No line items found</td></tr>\n")
	}
	for _, item := range lineItems {
		totalPrice := numberField(item, "TotalPrice")
		total += totalPrice
		b.WriteString("<tr>\n")
		fmt.Fprintf(&b, "<td>%s</td>\n", html.EscapeString(stringField(item, "Description")))
		fmt.Fprintf(&b, "<td style=\"text-align: center;\">%s</td>\n", formatQuantity(numberField(item, "Quantity")))
		fmt.Fprintf(&b, "<td style=\"text-align: right;\">%s</td>\n", formatCurrency(numberField(item, "UnitPrice")))
		fmt.Fprintf(&b, "<td style=\"text-align: right;\">%s</td>\n", formatCurrency(totalPrice))
		b.WriteString("</tr>\n")
	}

	// Total row renders even with no line items.
	b.WriteString("<tr class=\"total-row\">\n")
	b.WriteString("<td colspan=\"3\" style=\"text-align: right;\"><strong>Total:</strong></td>\n")
	fmt.Fprintf(&b, "<td style=\"text-align: right;\"><strong>%s</strong></td>\n", formatCurrency(total))
	b.WriteString("</tr>\n</tbody>\n</table>\n")

	if opts.IncludeTerms {
		b.WriteString("<div class=\"terms\">\n<h2>Terms &amp; Conditions</h2>\n<ol>\n")
		for _, clause := range termsClauses {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(clause))
		}
		b.WriteString("</ol>\n</div>\n")
	}

	// Footer
	b.WriteString("<div class=\"footer\">\n")
	fmt.Fprintf(&b, "<p>Generated on %s</p>\n", quoteDate)
	if opts.CustomFooter != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(opts.CustomFooter))
	}
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String()
}

// templateCSS returns the stylesheet for the named template. Unrecognized
// names fall back to the standard template; that is not an error.
func templateCSS(name string) string {
	switch name {
	case TemplateProfessional:
		return professionalCSS
	case TemplateMinimal:
		return minimalCSS
	default:
		return standardCSS
	}
}

// stringField reads a display field from a record, rendering absent and null
// values as the N/A placeholder.
func stringField(fields map[string]interface{}, name string) string {
	value, ok := fields[name]
	if !ok || value == nil {
		return placeholderNA
	}
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprintf("%v", value)
}

// numberField reads a numeric field from a record, treating absent and null
// values as zero.
func numberField(fields map[string]interface{}, name string) float64 {
	switch value := fields[name].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// accountName reads the nested Account reference, falling back to a flattened
// "Account.Name" key when the store returns one.
func accountName(opportunity map[string]interface{}) string {
	if nested, ok := opportunity["Account"].(map[string]interface{}); ok {
		if name, ok := nested["Name"].(string); ok && name != "" {
			return name
		}
	}
	if flat, ok := opportunity["Account.Name"].(string); ok && flat != "" {
		return flat
	}
	return placeholderNA
}

// formatCurrency renders a dollar amount with thousands separators and two
// decimals, e.g. "$1,234,567.89".
func formatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var b strings.Builder
	b.Grow(len(fixed) + len(intPart)/3 + 2)
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// formatQuantity renders a quantity without trailing zeros, so whole numbers
// print as integers.
func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
