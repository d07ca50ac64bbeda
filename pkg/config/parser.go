// Copyright 2026 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	keyEndpoint     = "endpoint"
	keyClientID     = "client_id"
	keyClientSecret = "client_secret"
	keyCertificate  = "certificate"
	keyOrgName      = "org_name"
	keyAppName      = "app_name"
)

var requiredKeys = []string{keyEndpoint, keyClientID, keyClientSecret, keyCertificate, keyOrgName}

// RawFields are the values of a configuration document before normalization.
type RawFields struct {
	Endpoint     string `mapstructure:"endpoint"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Certificate  string `mapstructure:"certificate"`
	OrgName      string `mapstructure:"org_name"`
	AppName      string `mapstructure:"app_name"`
	HasAppName   bool   `mapstructure:"-"`
}

// Parser turns the text of a configuration document into RawFields.
// Implementations return an error wrapping ErrParse for malformed documents.
type Parser interface {
	Parse(text string) (RawFields, error)
}

type ParserFunc func(text string) (RawFields, error)

func (f ParserFunc) Parse(text string) (RawFields, error) {
	return f(text)
}

const (
	FormatTOML   = "toml"
	FormatYAML   = "yaml"
	FormatJSON   = "json"
	FormatDotenv = "dotenv"
)

var formatsByExtension = map[string]string{
	"toml": FormatTOML,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
	"json": FormatJSON,
	"env":  FormatDotenv,
}

// FormatForPath picks the document format from the file extension, TOML if unknown.
func FormatForPath(path string) string {
	var ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format, ok := formatsByExtension[ext]; ok {
		return format
	}
	return FormatTOML
}

// DocumentParser reads configuration documents with viper.
// Keys are matched case-insensitively since viper lowercases them.
type DocumentParser struct {
	format string
}

func NewDocumentParser(format string) *DocumentParser {
	return &DocumentParser{format: format}
}

func (p *DocumentParser) Parse(text string) (RawFields, error) {
	var v = viper.New()
	v.SetConfigType(p.format)

	if err := v.ReadConfig(strings.NewReader(text)); err != nil {
		return RawFields{}, fmt.Errorf("%w: malformed %s document: %w", ErrParse, p.format, err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return RawFields{}, fmt.Errorf("%w: missing required key %q", ErrParse, key)
		}
	}

	var raw RawFields
	if err := v.Unmarshal(&raw, strictDecoding); err != nil {
		return RawFields{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	raw.HasAppName = v.IsSet(keyAppName)

	return raw, nil
}

// strictDecoding rejects values that are not strings instead of converting them.
func strictDecoding(c *mapstructure.DecoderConfig) {
	c.WeaklyTypedInput = false
}
