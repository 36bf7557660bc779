// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medicines

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// TableFile is the on-disk representation of a lookup table:
//
//	medicines:
//	  paracetamol: 1
//	  panadol: 1
type TableFile struct {
	Medicines map[string]int `yaml:"medicines"`
}

// LoadFile reads a lookup table from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading medicine table: %w", err)
	}

	var tf TableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing medicine table %s: %w", path, err)
	}

	t, err := NewTable(tf.Medicines)
	if err != nil {
		return nil, fmt.Errorf("medicine table %s: %w", path, err)
	}
	return t, nil
}

// Resolve returns the table stored at path, or the built-in table when
// path is empty.
func Resolve(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// WriteFile saves t as YAML so it can be edited and passed back to LoadFile.
func WriteFile(path string, t *Table) error {
	tf := TableFile{Medicines: make(map[string]int, t.Len())}
	for _, e := range t.Entries() {
		tf.Medicines[e.Name] = e.Code
	}

	data, err := yaml.Marshal(&tf)
	if err != nil {
		return fmt.Errorf("marshaling medicine table: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
