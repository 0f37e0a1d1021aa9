package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// =============================================================================
// Dataset Serialization API
// =============================================================================

// MarshalDataset converts a Dataset to pretty-printed JSON bytes.
func MarshalDataset(d Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDatasetTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDataset writes a Dataset as JSON to an io.Writer.
// Use MarshalDataset for in-memory serialization, or pkg/io for files.
func WriteDataset(d Dataset, w io.Writer) error {
	return writeDatasetTo(d, w)
}

// ReadDataset decodes a JSON dataset from an io.Reader and validates it.
// Pass bytes.NewReader for in-memory data, or use pkg/io for files.
func ReadDataset(r io.Reader) (Dataset, error) {
	return readDatasetFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDatasetTo(d Dataset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readDatasetFrom(r io.Reader) (Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Dataset{}, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}
