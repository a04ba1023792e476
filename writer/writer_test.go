package writer

import (
	"strings"
	"testing"

	"github.com/comcifs/gocif/model"
	"github.com/comcifs/gocif/parser"
	"github.com/comcifs/gocif/value"
)

func TestWriteQuotingRoundTrip(t *testing.T) {
	// spec.md §8 scenario 3: a value containing an apostrophe must be
	// written with double quotes, not bare or single-quoted.
	b, err := model.NewBlock("ABC")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetScalar("_x", value.Char("don't rock the boat")); err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := "\"don't rock the boat\""
	if !strings.Contains(got, want) {
		t.Fatalf("expected double-quoted value in output, got:\n%s", got)
	}
}

func TestWriteNumberVerbatim(t *testing.T) {
	// spec.md §8 scenario 4: the exact preserved text form is emitted
	// unchanged.
	b, _ := model.NewBlock("ABC")
	n, ok := value.ParseNumb("-10.250(125)")
	if !ok {
		t.Fatal("expected valid number")
	}
	b.SetScalar("_x", n)

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "-10.250(125)") {
		t.Fatalf("expected verbatim number token, got:\n%s", buf.String())
	}
}

func TestWriteBareWord(t *testing.T) {
	b, _ := model.NewBlock("ABC")
	b.SetScalar("_simple", value.Char("hello"))

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "_simple hello") {
		t.Fatalf("expected bare word emission, got:\n%s", buf.String())
	}
}

func TestWriteNumericLookingCharIsQuoted(t *testing.T) {
	// A CHAR value that looks numeric must never be emitted bare, or
	// re-parsing would silently turn it into NUMB.
	b, _ := model.NewBlock("ABC")
	b.SetScalar("_x", value.Char("123"))

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "_x 123\n") {
		t.Fatalf("numeric-looking CHAR value was written bare:\n%s", buf.String())
	}
}

func TestWriteMultilineUsesTextField(t *testing.T) {
	b, _ := model.NewBlock("ABC")
	b.SetScalar("_x", value.Char("line one\nline two"))

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, ";line one\nline two\n;\n") {
		t.Fatalf("expected text field form, got:\n%s", got)
	}
}

func TestWriteLeadingSemicolonLineUsesPrefix(t *testing.T) {
	b, _ := model.NewBlock("ABC")
	b.SetScalar("_x", value.Char("a\n;not a terminator\nb"))

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "\\\n") {
		t.Fatalf("expected a prefix-protocol signal line, got:\n%s", got)
	}
}

func TestWriteLoopShape(t *testing.T) {
	l, err := model.NewLoop(strPtr("cat"), []string{"_a", "_b"})
	if err != nil {
		t.Fatal(err)
	}
	p := model.NewPacket()
	p.Set("_a", value.Char("x"))
	p.Set("_b", value.Unknown{})
	if err := l.AddPacket(p); err != nil {
		t.Fatal(err)
	}

	b, _ := model.NewBlock("ABC")
	if err := b.AddLoop(l); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"loop_\n", "_a\n", "_b\n", "x ?"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in loop output, got:\n%s", want, got)
		}
	}
}

func TestWriteListTableRequiresV2(t *testing.T) {
	b, _ := model.NewBlock("ABC")
	b.SetScalar("_x", value.List{value.Char("a")})

	var buf strings.Builder
	err := WriteBlock(&buf, b, Options{Version: "1.1"})
	if err != ErrUnsupportedInVersion {
		t.Fatalf("expected ErrUnsupportedInVersion, got %v", err)
	}
}

func TestWriteListTableV2(t *testing.T) {
	b, _ := model.NewBlock("ABC")
	tbl := value.NewTable()
	tbl.Set("k", value.Char("v"))
	b.SetScalar("_x", value.List{value.Char("a"), tbl})

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{Version: "2.0"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "[a {'k':v}]") {
		t.Fatalf("unexpected list/table output:\n%s", got)
	}
}

func TestWriteSaveFrame(t *testing.T) {
	b, _ := model.NewBlock("ABC")
	f, err := model.NewFrame("fr")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetScalar("_inner", value.Char("v")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddFrame(f); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := WriteBlock(&buf, b, Options{Version: "2.0"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "save_fr\n") || !strings.Contains(got, "save_\n") {
		t.Fatalf("expected save frame delimiters, got:\n%s", got)
	}
}

func TestWriteCIFVersionMarker(t *testing.T) {
	cif := model.New()
	b, _ := cif.CreateBlock("ABC")
	_ = b

	var buf strings.Builder
	if err := Write(&buf, cif, Options{Version: "2.0"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "#\\CIF_2.0\n") {
		t.Fatalf("expected CIF 2 version marker, got:\n%s", buf.String())
	}
}

// TestWriteThenReparseDetectsCIF2Marker guards against the writer and the
// reader disagreeing on the version marker's literal form (spec.md §4.1/
// §4.4/§8 scenario 1): a document this package writes with a CIF 2 marker
// must come back out of the parser tagged as CIF 2, not silently
// misdetected as CIF 1.
func TestWriteThenReparseDetectsCIF2Marker(t *testing.T) {
	cif := model.New()
	b, _ := cif.CreateBlock("ABC")
	if err := b.SetScalar("_x", value.Char("hello")); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := Write(&buf, cif, Options{Version: "2.0"}); err != nil {
		t.Fatal(err)
	}

	reparsed, code := parser.Parse(strings.NewReader(buf.String()), parser.DefaultOptions())
	if !code.OK() {
		t.Fatalf("reparse failed: %v (wrote:\n%s)", code, buf.String())
	}
	if reparsed.Version != "2.0" {
		t.Fatalf("got Version=%q after reparse, want 2.0 (wrote:\n%s)", reparsed.Version, buf.String())
	}
}

func strPtr(s string) *string { return &s }
