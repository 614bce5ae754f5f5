package secrets

import (
	"reflect"
	"testing"
)

func TestDocumentMarshal(t *testing.T) {
	doc := newDocument()

	data, err := doc.marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("Expected empty object, got %q", data)
	}

	doc.set("B", "2")
	doc.set("A", `quote " & <tag>`)
	doc.set("B", "3")

	data, err = doc.marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	expected := "{\n  \"B\": \"3\",\n  \"A\": \"quote \\\" & <tag>\"\n}\n"
	if string(data) != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, data)
	}
}

func TestParseDocumentRoundTrip(t *testing.T) {
	doc := newDocument()
	doc.set("ZETA", "z")
	doc.set("alpha", "a")
	doc.set("名前", "値")

	data, err := doc.marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	parsed, err := parseDocument(data)
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}
	if !reflect.DeepEqual(parsed.names, doc.names) {
		t.Errorf("Expected names %v, got %v", doc.names, parsed.names)
	}
	if !reflect.DeepEqual(parsed.values, doc.values) {
		t.Errorf("Expected values %v, got %v", doc.values, parsed.values)
	}
}

func TestParseDocumentAcceptsWhitespace(t *testing.T) {
	parsed, err := parseDocument([]byte("  \n{ \"A\" :\t\"1\" ,\"B\":\"2\"}\n\n"))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}
	if !reflect.DeepEqual(parsed.names, []string{"A", "B"}) {
		t.Errorf("Expected [A B], got %v", parsed.names)
	}
}

func TestParseDocumentDuplicateKeys(t *testing.T) {
	parsed, err := parseDocument([]byte(`{"A": "1", "B": "2", "A": "3"}`))
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}
	if !reflect.DeepEqual(parsed.names, []string{"A", "B"}) {
		t.Errorf("Expected [A B], got %v", parsed.names)
	}
	if parsed.values["A"] != "3" {
		t.Errorf("Expected the last duplicate to win, got %q", parsed.values["A"])
	}
}
