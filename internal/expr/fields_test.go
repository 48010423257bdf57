package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencedFields(t *testing.T) {
	tests := []struct {
		expression string
		want       []string
	}{
		{`item.population > 100`, []string{"population"}},
		{`item.country == "DE" && item.population > 100`, []string{"country", "population"}},
		{`item.display.startsWith("B")`, []string{"display"}},
		{`item.tags.exists(t, t == "capital") || item.id != ""`, []string{"id", "tags"}},
		{`1 < 2`, []string{}},
		{`[item.a, item.b].size() > 0`, []string{"a", "b"}},
	}
	for _, tt := range tests {
		got, err := ReferencedFields(tt.expression)
		require.NoError(t, err, tt.expression)
		assert.Equal(t, tt.want, got, tt.expression)
	}
}

func TestReferencedFieldsRejectsUnparsableExpression(t *testing.T) {
	_, err := ReferencedFields(`item.population >`)
	assert.Error(t, err)
}
