// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package xmltext escapes raw text for safe insertion into XML markup.

The five reserved characters are replaced with their entity references:

	&  ->  &amp;
	<  ->  &lt;
	>  ->  &gt;
	"  ->  &quot;
	'  ->  &apos;

Escape is applied to user-supplied values that end up in hand-assembled
markup, such as the component envelope's name and description metadata.
It is never applied to fixed structural markup, and not to values set
through an XML tree builder, which escapes its own nodes.
*/
package xmltext
