package services

import (
	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/xmlpart"
)

// relationshipsOf reads the entries of a parsed relationship descriptor.
func relationshipsOf(doc *xmlpart.Document) []domain.Relationship {
	var rels []domain.Relationship
	for _, el := range doc.ChildrenNamed("Relationship") {
		rel := domain.Relationship{Mode: domain.TargetInternal}
		rel.ID, _ = el.AttrValue("", "Id")
		rel.Type, _ = el.AttrValue("", "Type")
		rel.Target, _ = el.AttrValue("", "Target")
		if mode, _ := el.AttrValue("", "TargetMode"); mode == string(domain.TargetExternal) {
			rel.Mode = domain.TargetExternal
		}
		rels = append(rels, rel)
	}
	return rels
}
