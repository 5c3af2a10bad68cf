package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDER_ID", "orderid"},
		{"order.item id", "orderitemid"},
		{"getHTTPResponse", "gethttpresponse"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "order"},
		{"item_ids", "item"},
		{"CreatedAt", "created"},
		{"created_utc", "created"},
		{"EventTimestamp", "event"},
		{"ID", "id"}, // nothing left to keep
		{"Name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentWithSuffixStrip(tt.input))
		})
	}
}
