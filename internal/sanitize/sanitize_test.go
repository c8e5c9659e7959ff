package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain text is kept",
			input: "Write report",
			want:  "Write report",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  Write report \n\t",
			want:  "Write report",
		},
		{
			name:  "tags are stripped",
			input: "<b>Write</b> <i>report</i>",
			want:  "Write report",
		},
		{
			name:  "attributes go with their tags",
			input: `<a href="http://example.com" onclick="steal()">link</a>`,
			want:  "link",
		},
		{
			name:  "script contents are dropped",
			input: "<script>alert(1)</script>Hello",
			want:  "Hello",
		},
		{
			name:  "markup only becomes empty",
			input: "<p>   </p>",
			want:  "",
		},
		{
			name:  "unclosed tag",
			input: "Hello <b>world",
			want:  "Hello world",
		},
		{
			name:  "ampersand is kept literally",
			input: "Tom & Jerry",
			want:  "Tom & Jerry",
		},
		{
			name:  "apostrophe is kept literally",
			input: "Don't forget",
			want:  "Don't forget",
		},
		{
			name:  "double quotes are kept literally",
			input: `say "hi"`,
			want:  `say "hi"`,
		},
		{
			name:  "mixed punctuation inside stripped tags",
			input: `<b>Don't "quote"</b> Tom & Jerry`,
			want:  `Don't "quote" Tom & Jerry`,
		},
		{
			name:  "angle brackets in plain text survive",
			input: "5 < 6 and 7 > 3",
			want:  "5 < 6 and 7 > 3",
		},
		{
			name:  "entities decode to their characters",
			input: "Tom &amp; Jerry",
			want:  "Tom & Jerry",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Text(tc.input))
		})
	}
}

func TestTextKeepsCharacterCount(t *testing.T) {
	t.Parallel()

	for _, ch := range []string{"&", "'", `"`} {
		ch := ch
		t.Run(ch, func(t *testing.T) {
			t.Parallel()
			input := strings.Repeat(ch, 100)
			got := Text(input)
			assert.Equal(t, input, got)
			assert.Equal(t, 100, utf8.RuneCountInString(got))
		})
	}
}
