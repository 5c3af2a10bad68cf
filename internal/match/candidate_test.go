package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankKeys(t *testing.T) {
	ranked := RankKeys("ItemCount", []string{"price", "item_cnt", "itemcount", "ITEM_COUNT"})
	require.Len(t, ranked, 4)

	// both exact normalizations tie at 1.0 and are ordered by key
	assert.Equal(t, "ITEM_COUNT", ranked[0].Key)
	assert.Equal(t, "itemcount", ranked[1].Key)
	assert.Equal(t, "item_cnt", ranked[2].Key)
	assert.Equal(t, "price", ranked[3].Key)
	assert.Equal(t, "itemcnt", ranked[2].NormalizedKey)
	assert.Equal(t, "ITEM_COUNT", ranked.Best().Key)
}

func TestSuggest(t *testing.T) {
	keys := []string{"nmae", "total", "created_at", "id"}

	assert.Equal(t, []string{"nmae"}, Suggest("Name", keys, 3))
	assert.Equal(t, []string{"created_at"}, Suggest("CreatedAt", keys, 3))
	assert.Empty(t, Suggest("Weight", keys, 3))
	assert.Empty(t, Suggest("Name", nil, 3))
}

func TestCandidateList(t *testing.T) {
	list := CandidateList{{Key: "a", NameScore: 0.9}, {Key: "b", NameScore: 0.4}}

	assert.Len(t, list.Top(1), 1)
	assert.Len(t, list.Top(5), 2)
	assert.Len(t, list.AboveThreshold(0.5), 1)
	assert.Nil(t, CandidateList{}.Best())
}
