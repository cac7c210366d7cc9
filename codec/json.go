package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/mwantia/cmdspec/data"
)

// DecodeJSON decodes a JSON object into a document using the token stream,
// which keeps declaration order and surfaces repeated keys instead of
// silently collapsing them.
func DecodeJSON(r io.Reader) (*data.Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("codec: expected JSON object, got %v", tok)
	}

	return jsonObject(dec)
}

func jsonObject(dec *json.Decoder) (*data.Document, error) {
	doc := data.NewDocument()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("codec: expected object key, got %v", tok)
		}

		value, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		doc.Set(key, value)
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return doc, nil
}

func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch value := tok.(type) {
	case json.Delim:
		if value == '{' {
			return jsonObject(dec)
		}
		return nil, fmt.Errorf("codec: unsupported JSON value '%v'", value)
	case string:
		return value, nil
	case bool:
		return value, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("codec: unsupported JSON value '%v'", tok)
	}
}

// EncodeJSON serializes a document to JSON, keeping entry order. Used by
// the registry stores as the persisted wire form.
func EncodeJSON(doc *data.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeObject(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeObject(buf *bytes.Buffer, doc *data.Document) error {
	buf.WriteByte('{')

	for i, entry := range doc.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		switch value := entry.Value.(type) {
		case *data.Document:
			if err := encodeObject(buf, value); err != nil {
				return err
			}
		case nil:
			buf.WriteString("null")
		case string, bool:
			raw, err := json.Marshal(value)
			if err != nil {
				return err
			}
			buf.Write(raw)
		default:
			return fmt.Errorf("codec: unsupported document value '%v'", value)
		}
	}

	buf.WriteByte('}')
	return nil
}
