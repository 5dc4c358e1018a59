// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate ties a resolved schema, the Objective-C emitter and a template pair together
// to produce the header and implementation files of one generated class.
package generate

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"github.com/dacolabs/objcgen/internal/jschema"
	"github.com/dacolabs/objcgen/internal/resolver"
)

// Driver defines the interface every generator variant implements.
type Driver interface {
	// Name returns the driver's identifier (e.g., "value-class", "event")
	Name() string

	// Templates returns the header and implementation template file names.
	Templates() (header, source string)

	// Variables computes the template placeholder values for a resolved schema.
	Variables(s *resolver.Schema, opts *Options) (map[string]string, error)
}

// Register maps driver names to drivers.
type Register map[string]Driver

// Get retrieves a driver by name.
func (r Register) Get(name string) (Driver, error) {
	d, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver: %s", name)
	}
	return d, nil
}

// Available returns all registered driver names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Drivers returns a Register holding every built-in driver.
func Drivers() Register {
	r := make(Register)
	for _, d := range []Driver{&ValueClass{}, &Event{}, &DataProvider{}} {
		r[d.Name()] = d
	}
	return r
}

// Defaults used when Options leaves a field empty.
const (
	DefaultSharedFramework = "Intelligence"
	DefaultBaseSchema      = "base.intelligence.json"
	DefaultEventPrefix     = "Analytricks"
)

// Options configures a generator run.
type Options struct {
	// Templates overrides the embedded templates. Files missing from it fall back to the
	// embedded defaults.
	Templates fs.FS

	// SharedRoot is the directory holding schemas shared between modules, as a path in the
	// same filesystem as the schema being generated.
	SharedRoot string

	// SharedFramework is the framework shared schema headers are imported from.
	SharedFramework string

	// SameModule forces quoted imports even for schemas under SharedRoot.
	SameModule bool

	// BaseSchema is the file name of the base schema that events compose but do not expose
	// as a property.
	BaseSchema string

	// EventPrefix is stripped from data provider type names to derive the event name.
	EventPrefix string

	// Exclude lists JSON keys whose properties the value class driver leaves out.
	Exclude []string

	// Year is written to the copyright header. Zero means the current year.
	Year int

	// ScriptName identifies the generator in the generated file header.
	ScriptName string

	// Canonical maps schema names to the one name all aliases of a file share.
	// See jschema.WithCanonicalizer.
	Canonical func(string) string

	// Inspect, if set, is called with the resolved schema before it is rendered.
	Inspect func(*resolver.Schema)

	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Options) sharedFramework() string {
	if o.SharedFramework == "" {
		return DefaultSharedFramework
	}
	return o.SharedFramework
}

func (o *Options) baseSchema() string {
	if o.BaseSchema == "" {
		return DefaultBaseSchema
	}
	return o.BaseSchema
}

func (o *Options) eventPrefix() string {
	if o.EventPrefix == "" {
		return DefaultEventPrefix
	}
	return o.EventPrefix
}

func (o *Options) year() int {
	if o.Year == 0 {
		return time.Now().Year()
	}
	return o.Year
}

// Generate resolves the schema named name in fsys and renders it with d.
func Generate(d Driver, fsys fs.FS, name string, opts *Options) (*Output, error) {
	if opts == nil {
		opts = &Options{}
	}
	loader := jschema.NewLoader(fsys, jschema.WithCanonicalizer(opts.Canonical))
	s, err := resolver.New(loader, resolver.WithLogger(opts.logger())).Resolve(name)
	if err != nil {
		return nil, err
	}
	if opts.Inspect != nil {
		opts.Inspect(s)
	}
	return Render(d, s, opts)
}

// Render fills the driver's templates for an already resolved schema.
func Render(d Driver, s *resolver.Schema, opts *Options) (*Output, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.logger().With("driver", d.Name(), "schema", s.Path)

	vars, err := d.Variables(s, opts)
	if err != nil {
		return nil, err
	}

	headerName, sourceName := d.Templates()
	out := &Output{TypeName: s.TypeName(true)}
	for _, t := range []struct {
		name string
		dst  *string
	}{
		{headerName, &out.Header},
		{sourceName, &out.Source},
	} {
		tmpl, err := LoadTemplate(opts.Templates, t.name)
		if err != nil {
			return nil, err
		}
		filled, err := Fill(tmpl, vars)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", t.name, err)
		}
		for _, name := range Unfilled(filled) {
			logger.Debug("placeholder left unfilled", "template", t.name, "placeholder", name)
		}
		*t.dst = filled
	}
	return out, nil
}
