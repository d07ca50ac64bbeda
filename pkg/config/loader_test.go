// Copyright 2026 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

//go:build testing

package config_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/casdoor-config/internal/test"
	"github.com/telekom/casdoor-config/pkg/config"
)

func TestLoadFromFile(t *testing.T) {
	var assertions = assert.New(t)

	t.Run("loads toml file", func(t *testing.T) {
		var path = test.WriteFile(t, "casdoor.toml", []byte(tomlDocument))

		c, err := config.LoadFromFile(path)
		require.NoError(t, err)

		assertions.Equal("http://localhost:8000", c.Endpoint())
		assertions.Equal("0ba528121ea87b3eb54d", c.ClientID())
		assertions.Equal("04f4ca6b6e8d59f8a3f46a0db6d7b1f9b0dd8e81", c.ClientSecret())
		assertions.Equal("-----BEGIN PUBLIC KEY-----\nABC\n-----END PUBLIC KEY-----", c.Certificate())
		assertions.Equal("built-in", c.OrgName())

		name, ok := c.AppName()
		assertions.True(ok)
		assertions.Equal("app-built-in", name)
	})

	t.Run("picks format from extension", func(t *testing.T) {
		for _, format := range []string{config.FormatTOML, config.FormatYAML, config.FormatJSON} {
			var path = test.WriteDocument(t, format, test.BuildBaseTestDocument())

			c, err := config.LoadFromFile(path)
			require.NoError(t, err, format)
			assertions.Equal(config.NormalizeCertificate(test.TestCertificate), c.Certificate(), format)
		}
	})

	t.Run("unknown extension is read as toml", func(t *testing.T) {
		var path = test.WriteFile(t, "casdoor.conf", []byte(tomlDocument))

		c, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assertions.Equal("built-in", c.OrgName())
	})

	t.Run("app name absent", func(t *testing.T) {
		var path = test.WriteDocument(t, config.FormatTOML, test.WithoutKeys(test.BuildBaseTestDocument(), "app_name"))

		c, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assertions.False(c.HasAppName())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nonexistent", "casdoor.toml"))
		assertions.ErrorIs(err, config.ErrIO)
		assertions.ErrorIs(err, fs.ErrNotExist)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		_, err := config.LoadFromFile(t.TempDir())
		assertions.ErrorIs(err, config.ErrIO)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		var path = test.WriteFile(t, "casdoor.toml", []byte("endpoint = \"\xff\xfe\"\n"))

		_, err := config.LoadFromFile(path)
		assertions.ErrorIs(err, config.ErrIO)
		assertions.False(errors.Is(err, config.ErrParse))
	})

	t.Run("missing client id", func(t *testing.T) {
		var path = test.WriteDocument(t, config.FormatTOML, test.WithoutKeys(test.BuildBaseTestDocument(), "client_id"))

		_, err := config.LoadFromFile(path)
		assertions.ErrorIs(err, config.ErrParse)
		assertions.False(errors.Is(err, config.ErrIO))
	})

	t.Run("injected parser", func(t *testing.T) {
		var path = test.WriteFile(t, "casdoor.yaml", []byte("anything"))
		var parser = &test.DummyParser{Fields: config.RawFields{
			Endpoint:    "http://localhost:8000",
			Certificate: test.TestCertificate,
		}}

		c, err := config.LoadFromFile(path, config.WithParser(parser))
		require.NoError(t, err)

		assertions.Equal(1, parser.ParseCalls)
		assertions.Equal([]string{"anything"}, parser.Documents)
		assertions.Equal(config.NormalizeCertificate(test.TestCertificate), c.Certificate())
		assertions.False(c.HasAppName())
	})

	t.Run("injected parser error is returned", func(t *testing.T) {
		var path = test.WriteFile(t, "casdoor.toml", []byte("anything"))
		var parseErr = errors.Join(config.ErrParse, errors.New("broken"))
		var parser = &test.DummyParser{Err: parseErr}

		_, err := config.LoadFromFile(path, config.WithParser(parser))
		assertions.ErrorIs(err, config.ErrParse)
	})

	t.Run("plain parser error is reported as parse error", func(t *testing.T) {
		var path = test.WriteFile(t, "casdoor.toml", []byte("anything"))
		var parser = config.ParserFunc(func(string) (config.RawFields, error) {
			return config.RawFields{}, errors.New("boom")
		})

		_, err := config.LoadFromFile(path, config.WithParser(parser))
		assertions.ErrorIs(err, config.ErrParse)
		assertions.ErrorContains(err, "boom")
		assertions.False(errors.Is(err, config.ErrIO))
	})
}

func TestLoadFromFileLogging(t *testing.T) {
	var assertions = assert.New(t)
	var recorder = test.NewLogRecorder()

	t.Run("success is logged at debug level", func(t *testing.T) {
		defer recorder.Reset()
		var path = test.WriteDocument(t, config.FormatTOML, test.BuildBaseTestDocument())

		_, err := config.LoadFromFile(path, config.WithLogger(recorder.Logger()))
		require.NoError(t, err)

		assertions.Equal(1, recorder.GetRecordCount(zerolog.DebugLevel))
		assertions.Equal([]string{"Loaded client configuration"}, recorder.Messages())
	})

	t.Run("failure is not logged", func(t *testing.T) {
		defer recorder.Reset()

		_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "casdoor.toml"), config.WithLogger(recorder.Logger()))
		assertions.Error(err)

		assertions.Equal(0, recorder.GetRecordCount(zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel))
	})
}

func TestConstructionPathsNormalizeIdentically(t *testing.T) {
	var certificates = []string{
		test.TestCertificate,
		"-----BEGIN CERTIFICATE-----\nABC\n-----END CERTIFICATE-----",
		"-----BEGIN PUBLIC KEY-----\nABC\n-----END PUBLIC KEY-----",
		"no marker at all",
		"",
	}

	for _, certificate := range certificates {
		var document = test.BuildBaseTestDocument()
		document["certificate"] = certificate

		loaded, err := config.LoadFromFile(test.WriteDocument(t, config.FormatTOML, document))
		require.NoError(t, err)

		var built = config.New("http://localhost:8000", "client", "secret", certificate, "built-in")
		assert.Equal(t, built.Certificate(), loaded.Certificate())
	}
}

func TestFromDocument(t *testing.T) {
	var assertions = assert.New(t)

	c, err := config.FromDocument(tomlDocument, config.NewDocumentParser(config.FormatTOML))
	require.NoError(t, err)
	assertions.Equal("-----BEGIN PUBLIC KEY-----\nABC\n-----END PUBLIC KEY-----", c.Certificate())

	_, err = config.FromDocument("org_name = \"built-in\"", config.NewDocumentParser(config.FormatTOML))
	assertions.ErrorIs(err, config.ErrParse)

	var boom = errors.New("boom")
	_, err = config.FromDocument("", config.ParserFunc(func(string) (config.RawFields, error) {
		return config.RawFields{}, boom
	}))
	assertions.ErrorIs(err, config.ErrParse)
	assertions.ErrorIs(err, boom)
}
