// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dacolabs/objcgen/internal/config"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the logger shared by commands.
type Context struct {
	// Config is the loaded configuration, or the defaults when no config file exists.
	Config *config.Config

	// ConfigPath is the config file that was loaded, empty when defaults are in use.
	ConfigPath string

	Logger *slog.Logger
}

// Load loads the project configuration and returns a new context.Context with the
// session Context stored in it. An empty configPath looks for objcgen.yaml in the current
// working directory and falls back to the defaults when there is none.
func Load(ctx context.Context, configPath string, logger *slog.Logger) (context.Context, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	explicit := configPath != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, config.FileName)
	}

	cfg := config.Default()
	if _, statErr := os.Stat(configPath); statErr == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configPath)
	} else {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		configPath = ""
		logger.Debug("no config file, using defaults")
	}

	sessionCtx := &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Logger:     logger,
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
