package fundstore

import (
	"bytes"
	_ "embed"
	"fmt"
)

// Embedded reference dataset. Annual figures for a handful of large Indian
// listed companies plus one small cap, in INR crore, covering each sector
// the report composer has a template for.
//
//go:embed data/fundamentals.csv
var embeddedDataset []byte

// NewEmbeddedStore loads the built-in fundamentals dataset. It needs no
// configuration and is the default backend.
func NewEmbeddedStore() (Store, error) {
	rows, err := parseCSV(bytes.NewReader(embeddedDataset))
	if err != nil {
		return nil, fmt.Errorf("embedded dataset is corrupt: %w", err)
	}
	return newMemoryStore("embedded", rows)
}
