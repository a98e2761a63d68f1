// Package svg renders catalog icons as standalone SVG documents.
package svg

import (
	"html"
	"strconv"
	"strings"

	"go.trai.ch/iconpick/internal/core/domain"
)

const viewBox = "0 0 24 24"

// Markup returns the SVG document of icon. Component icons are stroked outlines;
// path icons are a single filled path. A zero icon renders the placeholder.
func Markup(icon domain.RenderableIcon) string {
	size := domain.NormalizeSize(icon.Size)

	switch icon.Kind {
	case domain.KindComponent:
		var b strings.Builder
		open(&b, size, [][2]string{
			{"fill", "none"},
			{"stroke", "currentColor"},
			{"stroke-width", "2"},
			{"stroke-linecap", "round"},
			{"stroke-linejoin", "round"},
		})
		for _, node := range icon.Nodes {
			b.WriteString("  <")
			b.WriteString(node.Tag)
			for _, attr := range node.Attrs {
				writeAttr(&b, attr.Key, attr.Value)
			}
			b.WriteString("/>\n")
		}
		b.WriteString("</svg>\n")
		return b.String()
	case domain.KindPath:
		var b strings.Builder
		open(&b, size, [][2]string{{"fill", "currentColor"}})
		b.WriteString("  <path")
		writeAttr(&b, "d", icon.Path)
		b.WriteString("/>\n</svg>\n")
		return b.String()
	default:
		return Placeholder(size)
	}
}

// Placeholder returns the inert glyph shown where a stored icon cannot be rendered:
// a dashed rounded square.
func Placeholder(size int) string {
	var b strings.Builder
	open(&b, domain.NormalizeSize(size), [][2]string{
		{"fill", "none"},
		{"stroke", "currentColor"},
		{"stroke-width", "1.5"},
		{"stroke-dasharray", "3 3"},
		{"opacity", "0.5"},
	})
	b.WriteString(`  <rect width="18" height="18" x="3" y="3" rx="2"/>` + "\n")
	b.WriteString("</svg>\n")
	return b.String()
}

func open(b *strings.Builder, size int, attrs [][2]string) {
	px := strconv.Itoa(size)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	writeAttr(b, "width", px)
	writeAttr(b, "height", px)
	writeAttr(b, "viewBox", viewBox)
	for _, kv := range attrs {
		writeAttr(b, kv[0], kv[1])
	}
	b.WriteString(">\n")
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
