// Copyright 2025 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

//go:build testing

package test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/telekom/casdoor-config/pkg/config"
	"go.yaml.in/yaml/v3"
)

const TestCertificate = "-----BEGIN CERTIFICATE-----\nMIIE+TCCAuGgAwIBAgIDAeJAMA0GCSqGSIb3DQEBCwUAMDYxHTAbBgNVBAoTFENh\n-----END CERTIFICATE-----"

// BuildBaseTestDocument creates the values of a complete configuration document.
// Individual tests remove or override keys as needed.
func BuildBaseTestDocument() map[string]any {
	return map[string]any{
		"endpoint":      "http://localhost:8000",
		"client_id":     "0ba528121ea87b3eb54d",
		"client_secret": "04f4ca6b6e8d59f8a3f46a0db6d7b1f9b0dd8e81",
		"certificate":   TestCertificate,
		"org_name":      "built-in",
		"app_name":      "app-built-in",
	}
}

// WithoutKeys returns a copy of the document without the given keys.
func WithoutKeys(document map[string]any, keys ...string) map[string]any {
	var result = make(map[string]any, len(document))
	for key, value := range document {
		result[key] = value
	}
	for _, key := range keys {
		delete(result, key)
	}
	return result
}

// EncodeDocument renders the document in the given format.
func EncodeDocument(t *testing.T, format string, document map[string]any) string {
	t.Helper()

	var content []byte
	var err error

	switch format {
	case config.FormatTOML:
		content, err = toml.Marshal(document)
	case config.FormatYAML:
		content, err = yaml.Marshal(document)
	case config.FormatJSON:
		content, err = json.Marshal(document)
	default:
		t.Fatalf("unsupported document format %s", format)
	}

	if err != nil {
		t.Fatalf("could not encode %s document: %v", format, err)
	}
	return string(content)
}

// WriteDocument encodes the document and writes it to a temporary file named after the format.
func WriteDocument(t *testing.T, format string, document map[string]any) string {
	t.Helper()
	return WriteFile(t, fmt.Sprintf("casdoor.%s", format), []byte(EncodeDocument(t, format, document)))
}

func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("could not write %s: %v", path, err)
	}
	return path
}
