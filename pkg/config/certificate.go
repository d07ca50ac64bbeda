// Copyright 2026 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

const (
	certificateLabel = "CERTIFICATE"
	publicKeyLabel   = "PUBLIC KEY"
)

// NormalizeCertificate rewrites a certificate PEM block into a public key PEM block
// by replacing every literal "CERTIFICATE" with "PUBLIC KEY". The key material itself
// is left untouched. The match is case-sensitive and not limited to the delimiter lines.
func NormalizeCertificate(certificate string) string {
	return strings.ReplaceAll(certificate, certificateLabel, publicKeyLabel)
}
