package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/combox/internal/items"
)

func cityRecords() []items.Record {
	return []items.Record{
		{ID: "berlin", Display: "Berlin", Fields: map[string]any{"population": 3645000, "country": "DE"}},
		{ID: "boston", Display: "Boston", Fields: map[string]any{"population": 675000, "country": "US"}},
		{ID: "oslo", Display: "Oslo", Fields: map[string]any{"population": 709000, "country": "NO"}},
	}
}

func TestFilterRecords(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{"field comparison", `item.population > 700000`, []string{"berlin", "oslo"}},
		{"display prefix", `item.display.startsWith("B")`, []string{"berlin", "boston"}},
		{"id access", `item.id == "oslo"`, []string{"oslo"}},
		{"conjunction", `item.country == "DE" && item.population > 100`, []string{"berlin"}},
		{"matches nothing", `item.population > 10000000`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.expression)
			require.NoError(t, err)

			got := f.FilterRecords(cityRecords())
			ids := make([]string, 0, len(got))
			for _, rec := range got {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestNewFilterRejectsBadExpression(t *testing.T) {
	_, err := NewFilter(`item.population >`)
	assert.Error(t, err)
}

func TestMissingFieldCountsAsNoMatch(t *testing.T) {
	f, err := NewFilter(`item.elevation > 100`)
	require.NoError(t, err)

	assert.False(t, f.Matches(items.Record{ID: "x", Display: "x"}))
}

func TestNonBooleanResultCountsAsNoMatch(t *testing.T) {
	f, err := NewFilter(`item.display`)
	require.NoError(t, err)

	assert.False(t, f.Matches(cityRecords()[0]))
}
