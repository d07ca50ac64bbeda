// Copyright 2026 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type loadOptions struct {
	parser Parser
	logger *zerolog.Logger
}

// LoadOption customizes LoadFromFile.
type LoadOption func(*loadOptions)

// WithParser replaces the parser that is otherwise chosen from the file extension.
func WithParser(parser Parser) LoadOption {
	return func(o *loadOptions) {
		o.parser = parser
	}
}

// WithLogger replaces the global zerolog logger used for the load event.
func WithLogger(logger zerolog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = &logger
	}
}

// LoadFromFile reads the configuration document at path and builds a ClientConfig from it.
// Read failures and content that is not UTF-8 are reported as ErrIO, invalid documents as ErrParse.
func LoadFromFile(path string, opts ...LoadOption) (*ClientConfig, error) {
	var options = loadOptions{
		parser: NewDocumentParser(FormatForPath(path)),
		logger: &log.Logger,
	}
	for _, opt := range opts {
		opt(&options)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrIO, path)
	}

	config, err := FromDocument(string(content), options.parser)
	if err != nil {
		return nil, err
	}

	options.logger.Debug().Str("path", path).Object("config", config).Msg("Loaded client configuration")
	return config, nil
}

// FromDocument builds a ClientConfig from in-memory document text.
// Parser errors are always reported as ErrParse.
func FromDocument(text string, parser Parser) (*ClientConfig, error) {
	raw, err := parser.Parse(text)
	if err != nil {
		if !errors.Is(err, ErrParse) {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, err
	}
	return newFromRawFields(raw), nil
}
