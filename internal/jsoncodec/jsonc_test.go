package jsoncodec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"line comment", "{\"a\": 1 // one\n}", "{\"a\": 1 \n}"},
		{"block comment", `{"a": /* x */ 1}`, `{"a":   1}`},
		{"url in string", `{"a": "http://x/*y*/"}`, `{"a": "http://x/*y*/"}`},
		{"trailing commas", "{\"a\": [1, 2,\n ],\n}", "{\"a\": [1, 2\n ]\n}"},
		{"comma in string", `{"a": ",}"}`, `{"a": ",}"}`},
		{"escaped quote", `{"a": "\",]", }`, `{"a": "\",]" }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Strip(tc.in))
		})
	}
}

func TestStripCommentBeforeClosingBrace(t *testing.T) {
	in := `{
  "a": 1, // trailing
  /* nothing else */
}`
	var out map[string]int
	require.NoError(t, json.Unmarshal([]byte(Strip(in)), &out))
	assert.Equal(t, map[string]int{"a": 1}, out)
}
