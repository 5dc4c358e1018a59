// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package resolver turns schema files, including allOf composition over file $refs, into flat
// property lists ready for code emission.
package resolver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dacolabs/objcgen/internal/jschema"
	"github.com/dacolabs/objcgen/internal/naming"
	"github.com/dacolabs/objcgen/internal/typemap"
	"github.com/google/jsonschema-go/jsonschema"
)

var (
	// ErrCyclicSchema indicates an allOf $ref chain that leads back to a schema being resolved.
	ErrCyclicSchema = errors.New("cyclic schema reference")

	// ErrMissingDescription indicates a property or schema without a description.
	ErrMissingDescription = errors.New("missing description")

	// ErrDuplicateProperty indicates two properties that normalize to the same member name.
	ErrDuplicateProperty = errors.New("duplicate property")
)

// ParseError reports a schema that could not be read, decoded or mapped.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schema %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Resolver resolves schema files read through a jschema.Loader.
// Resolved schemas are memoized by canonical path, so a schema referenced from several places
// is loaded once per Resolver.
type Resolver struct {
	loader *jschema.Loader
	logger *slog.Logger
	cache  map[string]*Schema
	stack  []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver reading schema files through loader.
func New(loader *jschema.Loader, opts ...Option) *Resolver {
	r := &Resolver{
		loader: loader,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:  make(map[string]*Schema),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the schema at name and resolves its allOf composition recursively.
// Schemas are keyed by the loader's canonical form of name.
func (r *Resolver) Resolve(name string) (*Schema, error) {
	name = r.loader.Canonical(name)
	if s, ok := r.cache[name]; ok {
		return s, nil
	}
	for i, p := range r.stack {
		if p == name {
			chain := append(append([]string{}, r.stack[i:]...), name)
			return nil, &ParseError{
				Path: name,
				Err:  fmt.Errorf("%w: %s", ErrCyclicSchema, strings.Join(chain, " -> ")),
			}
		}
	}

	raw, err := r.loader.LoadFile(name)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	r.stack = append(r.stack, name)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	s := &Schema{
		Path:        name,
		description: raw.Description,
	}
	if len(raw.AllOf) > 0 {
		err = r.resolveComposition(s, raw.AllOf)
	} else {
		s.Properties, err = parseProperties(raw)
	}
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, &ParseError{Path: name, Err: err}
	}

	if err := CheckDuplicates(s.Properties); err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	r.logger.Debug("resolved schema",
		"path", name,
		"properties", len(s.Properties),
		"nested", len(s.Nested))

	r.cache[name] = s
	return s, nil
}

func (r *Resolver) resolveComposition(s *Schema, allOf []*jsonschema.Schema) error {
	for _, entry := range allOf {
		if entry.Ref == "" {
			props, err := parseProperties(entry)
			if err != nil {
				return err
			}
			s.Properties = append(s.Properties, props...)
			continue
		}

		if !jschema.IsFileRef(entry.Ref) {
			return fmt.Errorf("%w: %s", jschema.ErrUnsupportedRef, entry.Ref)
		}
		refPath := r.loader.Canonical(jschema.RefPath(s.Path, entry.Ref))
		nested, err := r.Resolve(refPath)
		if err != nil {
			return err
		}
		if s.NestedByPath(refPath) != nil {
			continue
		}
		s.Nested = append(s.Nested, Nested{
			Path:   refPath,
			Member: naming.Member(naming.Stem(refPath)),
			Schema: nested,
		})
	}
	return nil
}

// parseProperties maps the properties listed in required, in required order.
// A schema lacking either "properties" or "required" contributes nothing, and properties
// not listed in required are ignored.
func parseProperties(s *jsonschema.Schema) ([]Property, error) {
	if s.Properties == nil || s.Required == nil {
		return nil, nil
	}

	props := make([]Property, 0, len(s.Required))
	for _, key := range s.Required {
		def, ok := s.Properties[key]
		if !ok || def == nil {
			continue
		}
		prop, err := parseProperty(key, def)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		props = append(props, prop)
	}
	return props, nil
}

func parseProperty(key string, def *jsonschema.Schema) (Property, error) {
	desc, nullable, err := typemap.Map(def)
	if err != nil {
		return Property{}, err
	}
	if def.Description == "" {
		return Property{}, ErrMissingDescription
	}
	return Property{
		Name:        naming.Member(key),
		JSONKey:     key,
		Type:        desc,
		Description: def.Description + ".",
		Nullable:    nullable,
	}, nil
}

// CheckDuplicates reports the first two properties sharing a member name.
// Properties without a JSON key, such as those standing for a nested schema, are named by
// their member name.
func CheckDuplicates(props []Property) error {
	seen := make(map[string]string, len(props))
	for _, p := range props {
		key := p.JSONKey
		if key == "" {
			key = p.Name
		}
		if prev, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %q and %q both map to %q", ErrDuplicateProperty, prev, key, p.Name)
		}
		seen[p.Name] = key
	}
	return nil
}
