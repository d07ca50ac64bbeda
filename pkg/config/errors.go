// Copyright 2026 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	ErrIO        = errors.New("could not read client configuration")
	ErrParse     = errors.New("could not parse client configuration")
	ErrPublicKey = errors.New("could not decode public key from certificate")
)
