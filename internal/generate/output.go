// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Output is a rendered header and implementation pair.
type Output struct {
	TypeName string
	Header   string
	Source   string
}

// HeaderFile returns the header file name, e.g. "Point.h".
func (o *Output) HeaderFile() string {
	return o.TypeName + ".h"
}

// SourceFile returns the implementation file name, e.g. "Point.mm".
func (o *Output) SourceFile() string {
	return o.TypeName + ".mm"
}

// Write writes both files into dir, creating it if needed. Both files are fully written to
// pending files before either replaces its destination. If a later replace fails, the files
// already replaced are restored to their previous contents.
func (o *Output) Write(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{o.HeaderFile(), o.Header},
		{o.SourceFile(), o.Source},
	}

	pending := make([]*renameio.PendingFile, 0, len(files))
	defer func() {
		for _, pf := range pending {
			_ = pf.Cleanup()
		}
	}()

	for _, f := range files {
		dst := filepath.Join(dir, f.name)
		pf, err := renameio.NewPendingFile(dst, renameio.WithPermissions(0o644))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dst, err)
		}
		pending = append(pending, pf)
		if _, err := pf.WriteString(f.content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}

	var replaced []previous
	for i, f := range files {
		dst := filepath.Join(dir, f.name)
		prev := snapshot(dst)
		if err := pending[i].CloseAtomicallyReplace(); err != nil {
			restore(replaced)
			return nil, fmt.Errorf("failed to write %s: %w", dst, err)
		}
		replaced = append(replaced, prev)
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		written = append(written, filepath.Join(dir, f.name))
	}
	return written, nil
}

// previous is the state of a destination before it was replaced.
type previous struct {
	path    string
	content []byte
	existed bool
}

func snapshot(path string) previous {
	content, err := os.ReadFile(path)
	return previous{path: path, content: content, existed: err == nil}
}

func restore(replaced []previous) {
	for _, p := range replaced {
		if !p.existed {
			_ = os.Remove(p.path)
			continue
		}
		_ = renameio.WriteFile(p.path, p.content, 0o644)
	}
}
