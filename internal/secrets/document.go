package secrets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// document is the parsed store file: secret names mapped to encrypted values,
// remembering the order names were first written in.
type document struct {
	names  []string
	values map[string]string
}

func newDocument() *document {
	return &document{values: make(map[string]string)}
}

// set inserts or replaces name. A replaced name keeps its position.
func (d *document) set(name, value string) (replaced bool) {
	if _, ok := d.values[name]; ok {
		d.values[name] = value
		return true
	}
	d.names = append(d.names, name)
	d.values[name] = value
	return false
}

func (d *document) sortedNames() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	sort.Strings(names)
	return names
}

// parseDocument accepts a single JSON object whose values are all strings.
// Anything else is reported as an error describing what was wrong with it.
func parseDocument(data []byte) (*document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("top level is not a JSON object")
	}

	doc := newDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("reading value of %q: %w", name, err)
		}
		if len(raw) == 0 || raw[0] != '"' {
			return nil, fmt.Errorf("value of %q is not a string", name)
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("reading value of %q: %w", name, err)
		}
		doc.set(name, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}

	return doc, nil
}

// marshal writes the document as an indented JSON object in insertion order.
func (d *document) marshal() ([]byte, error) {
	if len(d.names) == 0 {
		return []byte("{}\n"), nil
	}

	var b bytes.Buffer
	b.WriteString("{\n")
	for i, name := range d.names {
		key, err := encodeJSONString(name)
		if err != nil {
			return nil, err
		}
		value, err := encodeJSONString(d.values[name])
		if err != nil {
			return nil, err
		}

		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		if i < len(d.names)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	return b.Bytes(), nil
}

func encodeJSONString(s string) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
