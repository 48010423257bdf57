package combobox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilter(t *testing.T) {
	cfg := testConfig()
	items := []string{"Apple", "apple pie", "banana", "pineapple"}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Apple", "apple pie", "banana", "pineapple"}},
		{"apple", []string{"apple pie", "pineapple"}},
		{"Apple", []string{"Apple"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Filter(items, tt.query), "query %q", tt.query)
	}
}

func TestDefaultFilterCopiesOnEmptyQuery(t *testing.T) {
	cfg := testConfig()
	items := []string{"a", "b"}

	out := cfg.Filter(items, "")
	out[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestWithFilterOverridesMatching(t *testing.T) {
	cfg := testConfig(WithFilter[string](func(items []string, query string) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			if strings.HasPrefix(it, query) {
				out = append(out, it)
			}
		}
		return out
	}))

	got := cfg.Filter([]string{"apple", "pineapple"}, "app")
	assert.Equal(t, []string{"apple"}, got)
}

func TestConfigDefaults(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, ModeSingle, cfg.Mode)

	// Empty namespace and unknown mode are rejected, keeping the defaults.
	cfg = testConfig(WithNamespace[string](""), WithMode[string]("triple"))
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, ModeSingle, cfg.Mode)
}

func TestEventForKey(t *testing.T) {
	tests := []struct {
		key     string
		want    Event
		prevent bool
	}{
		{"ArrowDown", PressedArrowKey{Direction: DirectionDown}, true},
		{"ArrowUp", PressedArrowKey{Direction: DirectionUp}, true},
		{"Enter", PressedEnterKey{}, true},
		{"Escape", PressedEscapeKey{}, false},
		{"down", PressedArrowKey{Direction: DirectionDown}, true},
		{"up", PressedArrowKey{Direction: DirectionUp}, true},
		{"enter", PressedEnterKey{}, true},
		{"esc", PressedEscapeKey{}, false},
	}
	for _, tt := range tests {
		ev, prevent := EventForKey(tt.key)
		assert.Equal(t, tt.want, ev, tt.key)
		assert.Equal(t, tt.prevent, prevent, tt.key)
	}

	ev, prevent := EventForKey("a")
	assert.Nil(t, ev)
	assert.False(t, prevent)
}
