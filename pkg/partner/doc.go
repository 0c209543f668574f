// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package partner is the single entry point for building trading partner
component documents.

A Builder resolves the requested standard, validates the shared and
standard-specific fields, composes the communication protocol options
in caller order, and wraps the result in the platform component
envelope. The returned document is a pure function of the request:
identical requests yield byte-identical documents.

# Usage

	b := partner.NewBuilder(nil)
	doc, err := b.Build(partner.DocumentRequest{
		Standard: "x12",
		Name:     "ACME Corp",
		StandardParameters: map[string]string{
			"interchangeId": "123456789",
		},
		CommunicationProtocols: []string{"ftp"},
		ProtocolParameters: map[string]map[string]string{
			"ftp": {"host": "ftp.acme.com"},
		},
	})

Requests may also be loaded from YAML files with LoadRequest.
*/
package partner
