package keys_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"record-mapper/convention"
	"record-mapper/internal/keys"
)

func TestLadder(t *testing.T) {
	tests := []struct {
		name, alias string
		want        []string
	}{
		{"ItemCount", "", []string{"ItemCount", "itemCount", "item-count", "itemcount", "ITEM_COUNT"}},
		{"ItemCount", "n", []string{"n", "ItemCount", "itemCount", "item-count", "itemcount", "ITEM_COUNT"}},
		{"Id", "", []string{"Id", "id", "ID"}},
		{"x", "x", []string{"x", "X"}},
		{"HTTPServer", "", []string{"HTTPServer", "httpserver", "HttpServer", "HTTPSERVER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.alias, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Ladder(tt.name, tt.alias))
		})
	}
}

func TestLadderIsStable(t *testing.T) {
	first := keys.Ladder("CreatedAt", "")
	first[0] = "mutated"

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "CreatedAt", keys.Ladder("CreatedAt", "")[0])
		}()
	}
	wg.Wait()
}

func TestWriteKey(t *testing.T) {
	assert.Equal(t, "item_count", keys.WriteKey("ItemCount", "item_count", convention.ScreamingCase))
	assert.Equal(t, "ITEM_COUNT", keys.WriteKey("ItemCount", "", convention.ScreamingCase))
	assert.Equal(t, "ItemCount", keys.WriteKey("ItemCount", "", convention.AsIs))
}

func ExampleLadder() {
	fmt.Println(keys.Ladder("OrderId", ""))
	// Output:
	// [OrderId orderId order-id orderid ORDER_ID]
}
