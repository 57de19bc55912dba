package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeQuotes(t *testing.T) {
	got := NormalizeQuotes(`"`, `'`, `"""`, `"`, "", "a b", "``")
	require.Equal(t, []string{`"""`, "``", `"`, `'`}, got)
	require.Empty(t, NormalizeQuotes())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		quotes []string
		want   []string
	}{
		{"empty", "", []string{`"`}, []string{}},
		{"only whitespace", "   \t ", nil, []string{}},
		{"plain", "a b  c", nil, []string{"a", "b", "c"}},
		{"leading and trailing space", "  a b ", nil, []string{"a", "b"}},
		{"double quoted", `run "hello world" now`, []string{`"`}, []string{"run", "hello world", "now"}},
		{"quotes not configured", `run "hello world"`, nil, []string{"run", `"hello`, `world"`}},
		{"single quoted", `a 'b c'`, []string{`"`, `'`}, []string{"a", "b c"}},
		{"escaped quotes stay literal", `say \"hi\"`, []string{`"`}, []string{"say", `"hi"`}},
		{"escaped quote inside quoted token", `"a \" b"`, []string{`"`}, []string{`a " b`}},
		{"escaped closing quote is not a close", `"a\" b`, []string{`"`}, []string{`"a"`, "b"}},
		{"even backslashes close", `"a\\" b`, []string{`"`}, []string{`a\`, "b"}},
		{"unterminated quote", `"hello world`, []string{`"`}, []string{`"hello`, "world"}},
		{"empty quoted token", `a "" b`, []string{`"`}, []string{"a", "", "b"}},
		{"quote inside a word", `a"b c"`, []string{`"`}, []string{`a"b`, `c"`}},
		{"close must end a token", `"a"b c"`, []string{`"`}, []string{`a"b c`}},
		{"first closing quote wins", `"a" b"`, []string{`"`}, []string{"a", `b"`}},
		{"adjacent quoted tokens", `"a b" "c d"`, []string{`"`}, []string{"a b", "c d"}},
		{"longest marker first", `"""a "b" c"""`, []string{`"`, `"""`}, []string{`a "b" c`}},
		{"mismatched markers", `'a b"`, []string{`"`, `'`}, []string{`'a`, `b"`}},
		{"trailing backslash kept", `path\`, nil, []string{`path\`}},
		{"double backslash", `a\\b`, nil, []string{`a\b`}},
		{"tabs and newlines", "a\tb\nc", nil, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokenize(tt.text, tt.quotes...))
		})
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	quotes := []string{`"`, `'`}
	cases := [][]string{
		{"a"},
		{"deploy", "web", "--force"},
		{"1", "2.5", "-3", "x=y"},
		{"ünïcode", "日本語"},
	}

	for _, tokens := range cases {
		require.Equal(t, tokens, Tokenize(strings.Join(tokens, " "), quotes...))
	}
}

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		text     string
		pathname string
		argname  string
	}{
		{"", "", ""},
		{"a.b", "a.b", ""},
		{"a.b x y", "a.b", "x y"},
		{"a.b   x  y ", "a.b", "x  y "},
		{"  x", "", "x"},
		{"a\t\"q r\"", "a", `"q r"`},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			pathname, argname := ParseCommandLine(tt.text)
			require.Equal(t, tt.pathname, pathname)
			require.Equal(t, tt.argname, argname)
		})
	}
}

func TestUnescape(t *testing.T) {
	require.Equal(t, "abc", Unescape("abc"))
	require.Equal(t, `a"b`, Unescape(`a\"b`))
	require.Equal(t, `\`, Unescape(`\\`))
	require.Equal(t, `x\`, Unescape(`x\`))
	require.Equal(t, "é", Unescape(`\é`))
}
