package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mwantia/cmdspec/data"
)

// DecodeYAML decodes a YAML mapping into a document. The yaml.v3 node API
// is used instead of plain unmarshalling because Go maps would lose the
// declaration order the compiler depends on.
func DecodeYAML(r io.Reader) (*data.Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return data.NewDocument(), nil
		}
		return nil, err
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return data.NewDocument(), nil
		}
		node = node.Content[0]
	}

	return yamlMapping(node)
}

func yamlMapping(node *yaml.Node) (*data.Document, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("codec: expected mapping at line %d", node.Line)
	}

	doc := data.NewDocument()
	for i := 0; i+1 < len(node.Content); i += 2 {
		value, err := yamlValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		doc.Set(node.Content[i].Value, value)
	}

	return doc, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		return yamlMapping(node)
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!bool":
			return strconv.ParseBool(node.Value)
		case "!!null":
			return nil, nil
		default:
			return node.Value, nil
		}
	default:
		return nil, fmt.Errorf("codec: unsupported value at line %d", node.Line)
	}
}
