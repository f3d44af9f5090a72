package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedCounts_MarshalPreservesOrder(t *testing.T) {
	counts := OrderedCounts{
		{Name: "Chrome", Count: 120},
		{Name: "Firefox", Count: 40},
		{Name: "Other", Count: 3},
	}

	data, err := json.Marshal(counts)

	assert.NoError(t, err)
	assert.Equal(t, `{"Chrome":120,"Firefox":40,"Other":3}`, string(data))
}

func TestOrderedCounts_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(OrderedCounts{})

	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestOrderedCounts_EscapesKeys(t *testing.T) {
	counts := OrderedCounts{{Name: `quo"te`, Count: 1}}

	data, err := json.Marshal(counts)

	assert.NoError(t, err)
	assert.Equal(t, `{"quo\"te":1}`, string(data))
}

func TestOrderedCounts_Unmarshal(t *testing.T) {
	var counts OrderedCounts
	err := json.Unmarshal([]byte(`{"Desktop":10,"Mobile":5}`), &counts)

	assert.NoError(t, err)
	assert.Equal(t, OrderedCounts{{Name: "Desktop", Count: 10}, {Name: "Mobile", Count: 5}}, counts)
}

func TestOrderedCounts_UnmarshalRestoresDescendingOrder(t *testing.T) {
	counts := OrderedCounts{
		{Name: "Chrome", Count: 100},
		{Name: "Safari", Count: 50},
		{Name: "Firefox", Count: 25},
		{Name: "Edge", Count: 10},
		{Name: "Other", Count: 5},
		{Name: "Aardvark", Count: 1},
	}

	data, err := json.Marshal(counts)
	assert.NoError(t, err)

	var restored OrderedCounts
	assert.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, counts, restored)

	again, err := json.Marshal(restored)
	assert.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestOrderedCounts_UnmarshalTieBreaksByName(t *testing.T) {
	var counts OrderedCounts
	err := json.Unmarshal([]byte(`{"Mobile":5,"Desktop":5,"Tablet":7}`), &counts)

	assert.NoError(t, err)
	assert.Equal(t, OrderedCounts{
		{Name: "Tablet", Count: 7},
		{Name: "Desktop", Count: 5},
		{Name: "Mobile", Count: 5},
	}, counts)
}
