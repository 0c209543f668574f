// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package comms builds communication option sub-documents for trading
partner components.

Each supported transport protocol (as2, disk, ftp, http, mllp, oftp,
sftp) has a builder that validates a flat parameter bag and emits the
protocol's CommunicationOption element, including its settings and
Get/Send/Listen action objects. Protocol settings are value-equivalent
across standards: an AS2 option looks identical whether it is attached
to an X12 or an EDIFACT partner, so the builders live here once instead
of being duplicated per standard.

# Composing Options

The composer resolves builders through a Registry and preserves the
caller-supplied protocol order, which is semantically visible in the
output document:

	reg := comms.NewRegistry()
	opts, err := comms.Compose(reg, []comms.Entry{
	    {Protocol: "ftp", Params: comms.Params{"host": "ftp.example.com"}},
	    {Protocol: "http", Params: comms.Params{"url": "https://example.com/edi"}},
	})

An empty entry list yields an explicitly empty <CommunicationOptions/>
container; downstream standard schemas expect the container to be
present either way.

# Validation

Builders fail fast before any output exists: absent required fields
produce a MissingParameterError, malformed values a ValidationError,
and unregistered protocol names an UnknownProtocolError. Optional
fields fall back to the platform's documented defaults (FTP port 21,
SFTP port 22, and so on). Boolean settings are rendered as lowercase
"true"/"false" attribute tokens.
*/
package comms
