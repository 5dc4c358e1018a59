// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Decode parses schema bytes in the given format.
// YAML documents are converted to JSON first so that the schema's own JSON decoding rules
// (union "type" lists, boolean schemas) apply to both formats.
func Decode(data []byte, format Format) (*jsonschema.Schema, error) {
	if format == YAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
		data = converted
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys      fs.FS
	canonical func(string) string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCanonicalizer sets the function mapping a cleaned name to the one name every alias of
// the same file shares. A nil function leaves names as they are.
func WithCanonicalizer(fn func(string) string) LoaderOption {
	return func(l *Loader) {
		l.canonical = fn
	}
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Canonical returns the canonical form of name. Without a canonicalizer it is the cleaned name.
func (l *Loader) Canonical(name string) string {
	name = path.Clean(name)
	if l.canonical == nil {
		return name
	}
	return l.canonical(name)
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*jsonschema.Schema, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Decode(data, FormatFromPath(filePath))
}

// RefPath resolves a file $ref relative to the directory of the schema that contains it.
// The result is a cleaned, slash-separated filesystem path.
func RefPath(fromFile, ref string) string {
	return path.Clean(path.Join(path.Dir(fromFile), ref))
}

// SystemFS returns a filesystem rooted at "/" together with the name under which osPath
// can be opened in it. Symlinks in osPath are resolved so that the name is canonical.
func SystemFS(osPath string) (fs.FS, string, error) {
	abs, err := filepath.Abs(osPath)
	if err != nil {
		return nil, "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	name := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if name == "" {
		name = "."
	}
	return os.DirFS("/"), name, nil
}

// SystemCanonical resolves symlinks in a name inside the SystemFS filesystem. Names that do
// not exist on disk are returned cleaned, so the open error surfaces from the Loader.
func SystemCanonical(name string) string {
	name = path.Clean(name)
	resolved, err := filepath.EvalSymlinks(SystemPath(name))
	if err != nil {
		return name
	}
	resolved = strings.TrimPrefix(filepath.ToSlash(resolved), "/")
	if resolved == "" {
		return "."
	}
	return resolved
}

// SystemPath converts a name inside the SystemFS filesystem back to an absolute OS path.
func SystemPath(name string) string {
	return filepath.FromSlash("/" + strings.TrimPrefix(name, "/"))
}
