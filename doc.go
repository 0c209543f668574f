// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gotradingpartner builds platform Component XML documents for B2B
trading partners across the common EDI standards.

# Overview

go-tradingpartner composes schema-exact trading partner component
documents for the X12, EDIFACT, HL7, RosettaNet, TRADACOMS, ODETTE and
custom standards, with reusable communication option sub-documents for
the AS2, FTP, SFTP, HTTP, MLLP, OFTP and Disk transports. The library
produces the document text only; submitting it to a platform API is the
caller's concern.

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-tradingpartner/pkg/partner   - Builder facade and DocumentRequest
	github.com/sirosfoundation/go-tradingpartner/pkg/standard  - Per-standard document builders and registry
	github.com/sirosfoundation/go-tradingpartner/pkg/comms     - Communication protocol builders, registry and composer
	github.com/sirosfoundation/go-tradingpartner/pkg/component - Generic component envelope wrapper
	github.com/sirosfoundation/go-tradingpartner/pkg/xmltext   - XML text escaping

# Quick Start

To build an X12 trading partner document:

	import "github.com/sirosfoundation/go-tradingpartner/pkg/partner"

	builder := partner.NewBuilder(nil)
	doc, err := builder.Build(partner.DocumentRequest{
	    Standard: "x12",
	    Name:     "ACME Corp",
	    StandardParameters: map[string]string{
	        "interchangeId": "ACMEID",
	    },
	    CommunicationProtocols: []string{"ftp"},
	    ProtocolParameters: map[string]map[string]string{
	        "ftp": {"host": "ftp.acme.example.com"},
	    },
	})

# Guarantees

Builders are pure functions of their inputs: identical requests yield
byte-identical documents, validation failures surface before any output
text exists, and per-standard element ordering is reproduced exactly.
The registries are populated at construction time and are safe for
unbounded concurrent reads afterwards.
*/
package gotradingpartner
