// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medicines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := Default()
	require.NotNil(t, tbl)
	assert.Equal(t, 4, tbl.Len())

	tests := []struct {
		name string
		code int
	}{
		{"paracetamol", 1},
		{"panadol", 1},
		{"aspirin", 2},
		{"penicillin", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := tbl.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestLookup(t *testing.T) {
	tbl := Default()

	tests := []struct {
		name   string
		code   int
		wantOK bool
	}{
		{"ASPIRIN", 2, true},
		{"Panadol", 1, true},
		{"pAnAdOl", 1, true},
		{"aspir", 0, false},
		{"aspirins", 0, false},
		{"", 0, false},
		{"\taspirin", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := tbl.Lookup(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]int
		wantErr error
		wantLen int
	}{
		{
			name:    "lower-cases names",
			input:   map[string]int{"Ibuprofen": 4, "NUROFEN": 4},
			wantLen: 2,
		},
		{
			name:    "merges spellings with the same code",
			input:   map[string]int{"Aspirin": 2, "aspirin": 2},
			wantLen: 1,
		},
		{
			name:    "allows code zero",
			input:   map[string]int{"placebo": 0},
			wantLen: 1,
		},
		{
			name:    "rejects empty table",
			input:   map[string]int{},
			wantErr: ErrEmptyTable,
		},
		{
			name:    "rejects nil table",
			input:   nil,
			wantErr: ErrEmptyTable,
		},
		{
			name:    "rejects blank name",
			input:   map[string]int{"  ": 1},
			wantErr: ErrEmptyName,
		},
		{
			name:    "rejects name with space",
			input:   map[string]int{"vitamin c": 5},
			wantErr: ErrNameHasSpace,
		},
		{
			name:    "rejects negative code",
			input:   map[string]int{"aspirin": -2},
			wantErr: ErrNegativeCode,
		},
		{
			name:    "rejects conflicting spellings",
			input:   map[string]int{"Aspirin": 2, "aspirin": 3},
			wantErr: ErrConflictingCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tbl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, tbl.Len())
		})
	}
}

func TestNewTable_DoesNotAliasInput(t *testing.T) {
	input := map[string]int{"aspirin": 2}
	tbl, err := NewTable(input)
	require.NoError(t, err)

	input["aspirin"] = 9
	input["ibuprofen"] = 4

	code, ok := tbl.Lookup("aspirin")
	require.True(t, ok)
	assert.Equal(t, 2, code)
	_, ok = tbl.Lookup("ibuprofen")
	assert.False(t, ok)
}

func TestEntries(t *testing.T) {
	want := []Entry{
		{Name: "panadol", Code: 1},
		{Name: "paracetamol", Code: 1},
		{Name: "aspirin", Code: 2},
		{Name: "penicillin", Code: 3},
	}
	assert.Equal(t, want, Default().Entries())
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, tbl *Table)
		errMsg  string
		wantErr error
	}{
		{
			name:    "reads medicines map",
			content: "medicines:\n  Ibuprofen: 4\n  nurofen: 4\n  aspirin: 2\n",
			check: func(t *testing.T, tbl *Table) {
				assert.Equal(t, 3, tbl.Len())
				code, ok := tbl.Lookup("IBUPROFEN")
				require.True(t, ok)
				assert.Equal(t, 4, code)
			},
		},
		{
			name:    "malformed yaml",
			content: "medicines: [unclosed\n",
			errMsg:  "parsing medicine table",
		},
		{
			name:    "missing medicines key",
			content: "drugs:\n  aspirin: 2\n",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "non-integer code",
			content: "medicines:\n  aspirin: two\n",
			errMsg:  "parsing medicine table",
		},
		{
			name:    "negative code",
			content: "medicines:\n  aspirin: -1\n",
			wantErr: ErrNegativeCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "medicines.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			tbl, err := LoadFile(path)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				tt.check(t, tbl)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	tbl, err := Resolve("")
	require.NoError(t, err)
	assert.Same(t, Default(), tbl)

	path := filepath.Join(t.TempDir(), "medicines.yaml")
	require.NoError(t, os.WriteFile(path, []byte("medicines:\n  ibuprofen: 4\n"), 0o644))

	tbl, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicines.yaml")
	require.NoError(t, WriteFile(path, Default()))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Entries(), tbl.Entries())
}
