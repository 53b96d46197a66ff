package sanitize

import "testing"

func TestStrip_PlainTextUnchanged(t *testing.T) {
	in := "Learn the basics of HTML and CSS.\n\nThen build a small page."
	if got := Strip(in); got != in {
		t.Fatalf("plain text changed: %q", got)
	}
}

func TestStrip_Empty(t *testing.T) {
	if got := Strip(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestStrip_TokenClasses(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"heading", "## Getting Started", "Getting Started"},
		{"bold", "This is **important** text", "This is important text"},
		{"italic", "This is *subtle* text", "This is subtle text"},
		{"bold underscore", "This is __important__ text", "This is important text"},
		{"italic underscore", "This is _subtle_ text", "This is subtle text"},
		{"link keeps label", "See [the docs](https://example.com) first", "See the docs first"},
		{"inline code", "Run `npm install` once", "Run npm install once"},
		{"fenced code keeps body", "```js\nconsole.log(1)\n```", "console.log(1)"},
		{"bullet list", "- first\n- second", "first\nsecond"},
		{"numbered list", "1. first\n2. second", "first\nsecond"},
		{"surrounding whitespace", "  hello  ", "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Strip(tc.in); got != tc.want {
				t.Fatalf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStrip_CollapsesBlankRuns(t *testing.T) {
	got := Strip("para one\n\n\n\npara two")
	want := "para one\n\npara two"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"## Title with **bold** and [link](http://x)",
		"- a\n- b\n\n`code`",
		"plain prose stays put",
		"```python\nprint('hi')\n```",
	}
	for _, in := range inputs {
		once := Strip(in)
		twice := Strip(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
