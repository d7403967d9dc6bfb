// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one YAML document from r. Unknown keys are rejected.
// The result is not validated; call Validate or one of the Build functions.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec.Decode: %w", err)
	}

	return &doc, nil
}

// Encode writes doc to w as YAML with two-space indentation.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec.Encode: %w", err)
	}

	return enc.Close()
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec.ReadFile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes doc into path, truncating any existing file.
func WriteFile(path string, doc *Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec.WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("codec.WriteFile: %w", cerr)
		}
	}()

	return Encode(f, doc)
}
