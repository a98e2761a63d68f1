package iconset

import (
	"go.trai.ch/iconpick/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk export table of one icon library.
type Manifest struct {
	Library string      `yaml:"library"`
	Exports []ExportDTO `yaml:"exports"`
}

// ExportDTO is one exported symbol. Only component and path entries carry
// drawing data; helpers are listed so the sources can reject them.
type ExportDTO struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	Tags  []string  `yaml:"tags"`
	Path  string    `yaml:"path"`
	Nodes []NodeDTO `yaml:"nodes"`
}

// NodeDTO is one vector element of a component icon.
type NodeDTO struct {
	Tag   string   `yaml:"tag"`
	Attrs AttrList `yaml:"attrs"`
}

// AttrList keeps attributes in document order, which a Go map would lose.
type AttrList []domain.Attr

// UnmarshalYAML decodes a mapping node pair by pair.
func (a *AttrList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"attrs must be a mapping"}}
	}

	attrs := make(AttrList, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		attrs = append(attrs, domain.Attr{
			Key:   value.Content[i].Value,
			Value: value.Content[i+1].Value,
		})
	}
	*a = attrs
	return nil
}

// toDomain converts the decoded table. It performs no validation.
func (m *Manifest) toDomain() []domain.Export {
	exports := make([]domain.Export, 0, len(m.Exports))
	for _, dto := range m.Exports {
		e := domain.Export{
			Name: dto.Name,
			Kind: domain.ExportKind(dto.Kind),
			Path: dto.Path,
			Tags: dto.Tags,
		}
		if len(dto.Nodes) > 0 {
			e.Nodes = make([]domain.Node, 0, len(dto.Nodes))
			for _, n := range dto.Nodes {
				e.Nodes = append(e.Nodes, domain.Node{Tag: n.Tag, Attrs: []domain.Attr(n.Attrs)})
			}
		}
		exports = append(exports, e)
	}
	return exports
}
