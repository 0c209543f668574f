// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package standard builds the standard-specific partner sub-documents for
the supported EDI and B2B document standards.

# Standards

Seven standards are supported: X12, EDIFACT, HL7, RosettaNet, Custom,
TRADACOMS and ODETTE. Each has its own builder producing the
TradingPartner element for that standard: the ContactInfo header, the
standard's PartnerInfo block (Options plus the control segments the
standard's schema mandates), the PartnerCommunication block embedding
the composed communication options, and the DocumentTypes/Archiving
trailer.

Element ordering inside each PartnerInfo block is schema-mandated and
reproduced exactly; consuming systems silently misinterpret documents
with reordered control segments.

# Registry

Builders are resolved by name through a Registry. Names match
case-insensitively. The registry is populated once by NewRegistry and
is read-only afterwards, so lookups need no locking.

Builders validate their required parameters before emitting any
output. A failed validation returns a ValidationError naming the
standard and the offending field; no partial document is ever
produced.
*/
package standard
