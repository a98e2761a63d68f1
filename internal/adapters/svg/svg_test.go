package svg_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/iconpick/internal/adapters/svg"
	"go.trai.ch/iconpick/internal/core/domain"
)

func TestMarkup(t *testing.T) {
	tests := []struct {
		name       string
		icon       domain.RenderableIcon
		goldenName string
	}{
		{
			name: "component",
			icon: domain.RenderableIcon{
				Library: domain.LibraryLucide,
				Name:    "X",
				Kind:    domain.KindComponent,
				Size:    24,
				Nodes: []domain.Node{
					{Tag: "path", Attrs: []domain.Attr{{Key: "d", Value: "M18 6 6 18"}}},
					{Tag: "path", Attrs: []domain.Attr{{Key: "d", Value: "m6 6 12 12"}}},
				},
			},
			goldenName: "component_x",
		},
		{
			name: "path at custom size",
			icon: domain.RenderableIcon{
				Library: domain.LibraryDuo,
				Name:    "bell",
				Kind:    domain.KindPath,
				Size:    48,
				Path:    "M12 2v2",
			},
			goldenName: "path_bell_48",
		},
		{
			name: "attribute values are escaped",
			icon: domain.RenderableIcon{
				Kind: domain.KindComponent,
				Size: 16,
				Nodes: []domain.Node{
					{Tag: "text", Attrs: []domain.Attr{{Key: "data-label", Value: `"a" & <b>`}}},
				},
			},
			goldenName: "component_escaped",
		},
		{
			name:       "zero icon",
			icon:       domain.RenderableIcon{},
			goldenName: "placeholder_24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(svg.Markup(tt.icon)))
		})
	}
}

func TestPlaceholder_NormalizesSize(t *testing.T) {
	assert.Equal(t, svg.Placeholder(24), svg.Placeholder(0))
	assert.Equal(t, svg.Placeholder(24), svg.Placeholder(-1))
	assert.Contains(t, svg.Placeholder(64), `width="64" height="64"`)
}
