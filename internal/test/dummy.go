// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

//go:build testing

package test

import "github.com/telekom/casdoor-config/pkg/config"

// DummyParser returns fixed fields and records the documents it was asked to parse.
type DummyParser struct {
	Fields     config.RawFields
	Err        error
	ParseCalls int
	Documents  []string
}

func (p *DummyParser) Parse(text string) (config.RawFields, error) {
	p.ParseCalls++
	p.Documents = append(p.Documents, text)
	if p.Err != nil {
		return config.RawFields{}, p.Err
	}
	return p.Fields, nil
}
