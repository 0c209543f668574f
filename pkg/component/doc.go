// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package component wraps a finished inner document in the generic
platform component envelope.

The envelope is identical for every component type: a bns:Component
root carrying the component name, type discriminator and folder path,
with the inner document embedded verbatim inside bns:object. Metadata
text is escaped on the way in; the inner document is a fully-built,
self-contained fragment and is never re-escaped.

The type discriminator is "tradingpartner" for partner documents;
future component types ("process", "connection", "map") plug into the
same Wrap contract.
*/
package component
