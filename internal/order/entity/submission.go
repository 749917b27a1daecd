package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/lambriz/order-api/internal/pkg/clock"
	"github.com/samber/lo"
)

// Kind discriminates the two submission shapes accepted on the wire.
type Kind int

const (
	// KindOrder is the default shape: a cart checkout from the mini-app.
	KindOrder Kind = iota
	// KindFeedback is a free-text message from the feedback form.
	KindFeedback
)

// Placeholder replaces absent textual fields in rendered output.
const Placeholder = "-"

// Customer holds contact details; every field is pre-filled with Placeholder
// when the payload omits it, so rendering code never probes for presence.
type Customer struct {
	Name           string
	Phone          string
	Email          string
	TelegramUserID string
	ContactMethod  string
	Comment        string
}

// LineItem is one cart position. Qty is kept as the caller-provided literal
// (defaulted to "1") and Price is coerced to a number, 0 when unparseable.
type LineItem struct {
	Title        string
	SKU          string
	Qty          string
	Price        float64
	RequestPrice bool
}

// Order is a fully-defaulted order submission. Items are already split into
// the priced bucket and the request-a-quote bucket.
type Order struct {
	ID                string
	CreatedAt         string
	Customer          Customer
	PricedItems       []LineItem
	RequestPriceItems []LineItem
	Total             float64
	TotalDisplay      string
}

// Feedback is a fully-defaulted feedback submission.
type Feedback struct {
	CreatedAt string
	Customer  Customer
	Message   string
}

// Submission is the tagged variant produced by DecodeSubmission.
type Submission struct {
	Kind     Kind
	Order    Order
	Feedback Feedback
}

// DecodeSubmission parses a loosely-typed JSON payload into a fully-populated
// Submission. Only a malformed JSON document fails; malformed values degrade
// to defaults so rendering stays total. An empty body decodes as an empty
// object. Classification reads requestType, then the legacy type field; any
// value other than "feedback" is treated as an order.
func DecodeSubmission(raw []byte, clk clock.Clocker) (Submission, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Submission{}, err
	}

	kind := strings.ToLower(strings.TrimSpace(lo.CoalesceOrEmpty(
		text(payload["requestType"]),
		text(payload["type"]),
	)))

	created := lo.CoalesceOrEmpty(
		text(payload["createdAt"]),
		clk.Now().UTC().Format(time.RFC3339),
	)
	customer := decodeCustomer(asMap(payload["customer"]), payload)

	if kind == "feedback" {
		return Submission{
			Kind: KindFeedback,
			Feedback: Feedback{
				CreatedAt: created,
				Customer:  customer,
				Message:   lo.CoalesceOrEmpty(text(payload["message"]), Placeholder),
			},
		}, nil
	}

	items := decodeItems(payload["items"])

	requestItems := decodeItems(payload["requestPriceItems"])
	if len(requestItems) == 0 {
		requestItems = lo.Filter(items, func(it LineItem, _ int) bool { return it.RequestPrice })
	}

	pricedItems := decodeItems(payload["pricedItems"])
	if len(pricedItems) == 0 {
		pricedItems = lo.Filter(items, func(it LineItem, _ int) bool { return !it.RequestPrice })
	}

	return Submission{
		Kind: KindOrder,
		Order: Order{
			ID:                lo.CoalesceOrEmpty(text(payload["id"]), Placeholder),
			CreatedAt:         created,
			Customer:          customer,
			PricedItems:       pricedItems,
			RequestPriceItems: requestItems,
			Total:             number(payload["total"]),
			TotalDisplay:      text(payload["totalDisplay"]),
		},
	}, nil
}

func decodeCustomer(c, payload map[string]any) Customer {
	return Customer{
		Name:  lo.CoalesceOrEmpty(text(c["name"]), Placeholder),
		Phone: lo.CoalesceOrEmpty(text(c["phone"]), Placeholder),
		Email: lo.CoalesceOrEmpty(text(c["email"]), Placeholder),
		// Telegram user IDs may arrive at the top level of the payload instead
		// of inside the customer object.
		TelegramUserID: lo.CoalesceOrEmpty(text(c["telegramUserId"]), text(payload["telegramUserId"]), Placeholder),
		ContactMethod:  lo.CoalesceOrEmpty(text(c["contactMethod"]), Placeholder),
		Comment:        lo.CoalesceOrEmpty(text(c["comment"]), Placeholder),
	}
}

func decodeItems(v any) []LineItem {
	rawItems, ok := v.([]any)
	if !ok {
		return nil
	}

	items := make([]LineItem, 0, len(rawItems))
	for _, rawItem := range rawItems {
		m := asMap(rawItem)
		items = append(items, LineItem{
			Title:        lo.CoalesceOrEmpty(text(m["title"]), Placeholder),
			SKU:          lo.CoalesceOrEmpty(text(m["sku"]), Placeholder),
			Qty:          lo.CoalesceOrEmpty(text(m["qty"]), "1"),
			Price:        number(m["price"]),
			RequestPrice: truthy(m["isRequestPrice"]),
		})
	}

	return items
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// text renders a scalar JSON value as a string; non-scalars become "".
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// number coerces a JSON value to a float, 0 when absent or unparseable.
func number(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != "" && t != "false" && t != "0"
	default:
		return false
	}
}
