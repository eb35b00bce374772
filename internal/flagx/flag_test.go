package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value is kept",
			args:     []string{"-a", ":8000", "-x", "other"},
			allowed:  []string{"-a"},
			expected: []string{"-a", ":8000"},
		},
		{
			name:     "equals form is kept",
			args:     []string{"--config=conf.json", "-z=1"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag without value before another flag",
			args:     []string{"-v", "-a", ":8000"},
			allowed:  []string{"-v", "-a"},
			expected: []string{"-v", "-a", ":8000"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "1", "-b", "2"},
			allowed:  []string{},
			expected: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}
