package htmltext

import (
	"strings"
	"testing"
)

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	doc := `<html><head><title>Notes</title><style>p { color: red }</style>
<script>var x = "hidden";</script></head>
<body><p>First   paragraph.</p><p>Second <b>bold</b> one.</p></body></html>`

	got, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Notes\nFirst paragraph.\nSecond bold one."
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestStringFragment(t *testing.T) {
	got := String("Hello <i>world</i>!")
	if got != "Hello world!" {
		t.Errorf("String = %q", got)
	}
}

func TestStringEmpty(t *testing.T) {
	if got := String(""); got != "" {
		t.Errorf("String(\"\") = %q, want empty", got)
	}
}

func TestExtractDecodesEntities(t *testing.T) {
	got := String("<p>fish &amp; chips</p>")
	if got != "fish & chips" {
		t.Errorf("String = %q", got)
	}
}
