package component

import (
	"strings"

	"github.com/sirosfoundation/go-tradingpartner/pkg/xmltext"
)

// Namespace is the platform API namespace carried by every component
// envelope.
const Namespace = "http://api.platform.boomi.com/"

// Meta is the envelope metadata. Type discriminates the component
// kind ("tradingpartner"); FolderPath may contain slash-delimited
// segments and is passed through unmodified apart from escaping.
type Meta struct {
	Type        string
	Name        string
	FolderPath  string
	Description string
}

// Wrap embeds inner, a fully-built document fragment, in the component
// envelope described by meta. Metadata values are escaped; inner is
// emitted verbatim.
func Wrap(meta Meta, inner string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<bns:Component xmlns:bns="` + Namespace + `"`)
	b.WriteString(` name="` + xmltext.Escape(meta.Name) + `"`)
	b.WriteString(` type="` + xmltext.Escape(meta.Type) + `"`)
	b.WriteString(` folderName="` + xmltext.Escape(meta.FolderPath) + `">` + "\n")
	b.WriteString("  <bns:encryptedValues/>\n")
	b.WriteString("  <bns:description>" + xmltext.Escape(meta.Description) + "</bns:description>\n")
	b.WriteString("  <bns:object>\n")
	b.WriteString(strings.TrimRight(inner, "\n"))
	b.WriteString("\n  </bns:object>\n")
	b.WriteString("  <bns:processOverrides/>\n")
	b.WriteString("</bns:Component>\n")
	return b.String()
}
