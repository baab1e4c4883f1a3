package mongodb

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNameContains(t *testing.T) {
	tests := []struct {
		name      string
		keyword   string
		matches   []string
		unmatched []string
	}{
		{
			name:      "case-insensitive substring",
			keyword:   "spicy",
			matches:   []string{"Spicy Noodles", "Extra SPICY wings", "spicy"},
			unmatched: []string{"Fried Rice", "Spic y"},
		},
		{
			name:      "empty keyword matches everything",
			keyword:   "",
			matches:   []string{"Fried Rice", ""},
			unmatched: nil,
		},
		{
			name:      "metacharacters are literal",
			keyword:   "c++",
			matches:   []string{"C++ Cafe"},
			unmatched: []string{"Cafe", "ccc"},
		},
		{
			name:      "dot is not a wildcard",
			keyword:   "a.b",
			matches:   []string{"A.B Kitchen"},
			unmatched: []string{"axb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := nameContains(tt.keyword)

			re, ok := filter["name"].(primitive.Regex)
			require.True(t, ok)
			assert.Equal(t, "i", re.Options)

			compiled := regexp.MustCompile("(?i)" + re.Pattern)
			for _, name := range tt.matches {
				assert.True(t, compiled.MatchString(name), "expected %q to match %q", tt.keyword, name)
			}
			for _, name := range tt.unmatched {
				assert.False(t, compiled.MatchString(name), "expected %q not to match %q", tt.keyword, name)
			}
		})
	}
}
