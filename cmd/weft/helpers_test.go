package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain lines",
			input:    "one\ntwo\nthree\n",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "crlf endings",
			input:    "one\r\ntwo\r\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "blank lines dropped",
			input:    "one\n\n\ntwo\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "missing final newline",
			input:    "one\ntwo",
			expected: []string{"one", "two"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanLines(strings.NewReader(tt.input))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("scanLines() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		asJSON   bool
		expected []any
		wantErr  bool
	}{
		{
			name:     "plain strings pass through",
			raw:      []string{"21", "hello"},
			expected: []any{"21", "hello"},
		},
		{
			name:     "json values decoded",
			raw:      []string{"21", `{"a":1}`, `"quoted"`},
			asJSON:   true,
			expected: []any{float64(21), map[string]any{"a": float64(1)}, "quoted"},
		},
		{
			name:    "invalid json reported",
			raw:     []string{"{not json"},
			asJSON:  true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInputs(tt.raw, tt.asJSON)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInputs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseInputs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPrintResults(t *testing.T) {
	results := []any{"hi", 7}

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:     "text prints strings raw and encodes the rest",
			format:   "text",
			expected: "hi\n7\n",
		},
		{
			name:     "json emits one array",
			format:   "json",
			expected: "[\n  \"hi\",\n  7\n]\n",
		},
		{
			name:     "yaml emits a sequence",
			format:   "yaml",
			expected: "- hi\n- 7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := output
			output = tt.format
			defer func() { output = prev }()

			var buf bytes.Buffer
			if err := printResults(&buf, results); err != nil {
				t.Fatalf("printResults() error = %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("printResults() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		prefix   string
		expected string
	}{
		{
			name:     "single line",
			input:    "one\n",
			prefix:   "  ",
			expected: "  one\n",
		},
		{
			name:     "multiple lines",
			input:    "one\ntwo",
			prefix:   "> ",
			expected: "> one\n> two\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := indent(tt.input, tt.prefix); got != tt.expected {
				t.Errorf("indent() = %q, want %q", got, tt.expected)
			}
		})
	}
}
