package edgelist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one document from r. Unknown keys are rejected, graphs without a
// name are named "graph-<index>".
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoGraphs
		}
		return nil, fmt.Errorf("edgelist: decode: %w", err)
	}
	if len(doc.Graphs) == 0 {
		return nil, ErrNoGraphs
	}
	for i := range doc.Graphs {
		if doc.Graphs[i].Name == "" {
			doc.Graphs[i].Name = fmt.Sprintf("graph-%d", i)
		}
	}

	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the document at path. A path of "-" reads stdin.
func Load(path string) (*Document, error) {
	if path == "-" {
		doc, err := Decode(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return doc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Marshal encodes doc as YAML with two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("edgelist: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("edgelist: encode: %w", err)
	}

	return buf.Bytes(), nil
}
