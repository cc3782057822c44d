package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "missing key becomes empty and result is trimmed",
			template: "{{a}} and {{b}}",
			values:   map[string]string{"a": "X"},
			want:     "X and",
		},
		{
			name:     "all placeholders replaced globally",
			template: "{{name}} {{name}} at {{company}}",
			values:   map[string]string{"name": "Ada", "company": "AE"},
			want:     "Ada Ada at AE",
		},
		{
			name:     "whitespace inside braces tolerated",
			template: "{{ name }}!",
			values:   map[string]string{"name": "Ada"},
			want:     "Ada!",
		},
		{
			name:     "no placeholders",
			template: "  plain text  ",
			values:   nil,
			want:     "plain text",
		},
		{
			name:     "empty template",
			template: "",
			values:   map[string]string{"a": "X"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyTemplate(tt.template, tt.values))
		})
	}
}
