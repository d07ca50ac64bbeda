// Copyright 2026 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

const redacted = "***"

// ClientConfig holds the connection parameters of a Casdoor client.
// Instances are immutable once built and safe for concurrent use.
type ClientConfig struct {
	endpoint     string
	clientID     string
	clientSecret string
	certificate  string
	orgName      string
	appName      string
	hasAppName   bool
}

// Option customizes a ClientConfig built with New.
type Option func(*ClientConfig)

// WithAppName sets the name of the application within the organization.
func WithAppName(name string) Option {
	return func(c *ClientConfig) {
		c.appName = name
		c.hasAppName = true
	}
}

// New creates a ClientConfig from explicit values. The certificate is normalized
// with NormalizeCertificate, every other value is stored as given.
func New(endpoint, clientID, clientSecret, certificate, orgName string, opts ...Option) *ClientConfig {
	var config = &ClientConfig{
		endpoint:     endpoint,
		clientID:     clientID,
		clientSecret: clientSecret,
		certificate:  NormalizeCertificate(certificate),
		orgName:      orgName,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

func newFromRawFields(raw RawFields) *ClientConfig {
	var opts []Option
	if raw.HasAppName {
		opts = append(opts, WithAppName(raw.AppName))
	}
	return New(raw.Endpoint, raw.ClientID, raw.ClientSecret, raw.Certificate, raw.OrgName, opts...)
}

// Endpoint returns the base URL of the Casdoor server.
func (c *ClientConfig) Endpoint() string {
	return c.endpoint
}

// ClientID returns the public identifier of the application.
func (c *ClientConfig) ClientID() string {
	return c.clientID
}

// ClientSecret returns the confidential client credential.
func (c *ClientConfig) ClientSecret() string {
	return c.clientSecret
}

// Certificate returns the normalized PEM block.
func (c *ClientConfig) Certificate() string {
	return c.certificate
}

// OrgName returns the organization the client operates under.
func (c *ClientConfig) OrgName() string {
	return c.orgName
}

// AppName returns the application name and whether one was specified.
func (c *ClientConfig) AppName() (string, bool) {
	return c.appName, c.hasAppName
}

// HasAppName reports whether an application name was specified.
func (c *ClientConfig) HasAppName() bool {
	return c.hasAppName
}

// String renders the configuration without the client secret and the certificate.
func (c *ClientConfig) String() string {
	var appName = "<unset>"
	if name, ok := c.AppName(); ok {
		appName = name
	}

	return fmt.Sprintf("ClientConfig{endpoint: %s, clientId: %s, clientSecret: %s, orgName: %s, appName: %s}",
		c.endpoint, c.clientID, redacted, c.orgName, appName)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler. The client secret is redacted.
func (c *ClientConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("endpoint", c.endpoint).
		Str("clientId", c.clientID).
		Str("clientSecret", redacted).
		Str("orgName", c.orgName)

	if name, ok := c.AppName(); ok {
		e.Str("appName", name)
	}
}
