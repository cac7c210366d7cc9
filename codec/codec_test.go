package codec_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mwantia/cmdspec/codec"
	"github.com/mwantia/cmdspec/data"
)

const specYAML = `
name: tool
about: Does things.
flags:
  verbose:
    short: v
    global: true
  quiet:
    short: q
subcommands:
  build:
    parse_double_dash: false
`

func TestDecodeYAML(t *testing.T) {
	doc, err := codec.DecodeYAML(strings.NewReader(specYAML))
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}

	if !reflect.DeepEqual(doc.Keys(), []string{"name", "about", "flags", "subcommands"}) {
		t.Errorf("Expected declaration order preserved, got %v", doc.Keys())
	}

	raw, _ := doc.Get("flags")
	flags, ok := raw.(*data.Document)
	if !ok {
		t.Fatalf("Expected nested document for flags, got %T", raw)
	}
	if !reflect.DeepEqual(flags.Keys(), []string{"verbose", "quiet"}) {
		t.Errorf("Expected flag order preserved, got %v", flags.Keys())
	}

	raw, _ = flags.Get("verbose")
	verbose := raw.(*data.Document)
	if value, _ := verbose.Get("global"); value != true {
		t.Errorf("Expected boolean true for global, got %v (%T)", value, value)
	}
	if value, _ := verbose.Get("short"); value != "v" {
		t.Errorf("Expected string 'v' for short, got %v (%T)", value, value)
	}
}

func TestDecodeYAML_Empty(t *testing.T) {
	doc, err := codec.DecodeYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Expected empty document, got %d entries", doc.Len())
	}
}

func TestDecodeYAML_NotMapping(t *testing.T) {
	if _, err := codec.DecodeYAML(strings.NewReader("- a\n- b\n")); err == nil {
		t.Error("Expected error for sequence root")
	}
}

func TestDecodeJSON(t *testing.T) {
	input := `{"name":"tool","flags":{"verbose":{"short":"v","global":true},"quiet":null}}`

	doc, err := codec.DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if !reflect.DeepEqual(doc.Keys(), []string{"name", "flags"}) {
		t.Errorf("Expected key order preserved, got %v", doc.Keys())
	}

	raw, _ := doc.Get("flags")
	flags := raw.(*data.Document)
	if value, ok := flags.Get("quiet"); !ok || value != nil {
		t.Errorf("Expected null flag entry, got (%v, %v)", value, ok)
	}
}

func TestDecodeJSON_DuplicateKeysSurvive(t *testing.T) {
	// Duplicates must reach the compiler so it can fail structurally
	// instead of the decoder silently collapsing them.
	doc, err := codec.DecodeJSON(strings.NewReader(`{"name":"a","name":"b"}`))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if key, ok := doc.DuplicateKey(); !ok || key != "name" {
		t.Errorf("Expected duplicate 'name' preserved, got ('%s', %v)", key, ok)
	}
}

func TestDecodeJSON_UnsupportedValue(t *testing.T) {
	if _, err := codec.DecodeJSON(strings.NewReader(`{"args":["a"]}`)); err == nil {
		t.Error("Expected error for array value")
	}
	if _, err := codec.DecodeJSON(strings.NewReader(`"scalar"`)); err == nil {
		t.Error("Expected error for non-object root")
	}
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	doc := data.NewDocument().
		Set("name", "tool").
		Set("parse_double_dash", false).
		Set("flags", data.NewDocument().
			Set("verbose", data.NewDocument().
				Set("short", "v").
				Set("global", true)).
			Set("quiet", nil))

	blob, err := codec.EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	decoded, err := codec.DecodeJSON(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if !reflect.DeepEqual(doc, decoded) {
		t.Errorf("Round trip mismatch:\n  in:  %#v\n  out: %#v", doc, decoded)
	}
}

func TestDetect(t *testing.T) {
	cases := map[string]codec.Format{
		"spec.yaml": codec.FormatYAML,
		"spec.yml":  codec.FormatYAML,
		"spec.json": codec.FormatJSON,
	}

	for path, expected := range cases {
		format, err := codec.Detect(path)
		if err != nil {
			t.Errorf("Detect(%s) failed: %v", path, err)
			continue
		}
		if format != expected {
			t.Errorf("Detect(%s) = %v, expected %v", path, format, expected)
		}
	}

	if _, err := codec.Detect("spec.toml"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
