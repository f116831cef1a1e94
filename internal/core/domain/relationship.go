package domain

import (
	"path"
	"strings"
)

// Well-known part paths and namespace URIs.
const (
	ContentTypesPath = "[Content_Types].xml"
	WorkbookPath     = "xl/workbook.xml"
	DefaultSheetPath = "xl/worksheets/sheet1.xml"
	DrawingsDir      = "xl/drawings"

	RelationshipsNS       = "http://schemas.openxmlformats.org/package/2006/relationships"
	OfficeRelationshipsNS = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	RelTypeDrawing   = OfficeRelationshipsNS + "/drawing"
	RelTypeImage     = OfficeRelationshipsNS + "/image"
	RelTypeWorksheet = OfficeRelationshipsNS + "/worksheet"

	ContentTypeDrawing       = "application/vnd.openxmlformats-officedocument.drawing+xml"
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
)

// TargetMode says whether a relationship target lives inside the package.
type TargetMode string

// Target modes. The empty value in XML means internal.
const (
	TargetInternal TargetMode = "Internal"
	TargetExternal TargetMode = "External"
)

// Relationship is one entry of a relationship descriptor.
type Relationship struct {
	ID     string
	Type   string
	Target string
	Mode   TargetMode
}

// IsExternal reports whether the target points outside the package.
func (r Relationship) IsExternal() bool {
	return r.Mode == TargetExternal
}

// RelsPathFor returns the descriptor path for a part:
// xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func RelsPathFor(partPath string) string {
	partPath = CleanPartPath(partPath)
	dir, file := path.Split(partPath)
	return dir + "_rels/" + file + ".rels"
}

// SourceOfRels is the inverse of RelsPathFor. The package-level descriptor
// _rels/.rels has source "".
func SourceOfRels(relsPath string) string {
	relsPath = CleanPartPath(relsPath)
	dir, file := path.Split(relsPath)
	dir = strings.TrimSuffix(strings.TrimSuffix(dir, "/"), "_rels")
	return CleanPartPath(dir + strings.TrimSuffix(file, ".rels"))
}

// ResolveTarget resolves an internal relationship target against the part
// that owns the descriptor. Absolute targets start at the package root.
func ResolveTarget(sourcePart, target string) string {
	target = strings.ReplaceAll(target, "\\", "/")
	if strings.HasPrefix(target, "/") {
		return CleanPartPath(target)
	}
	return CleanPartPath(path.Join(path.Dir("/"+CleanPartPath(sourcePart)), target))
}

// RelativeTarget returns the target string that reaches toPart from a
// descriptor owned by fromPart.
func RelativeTarget(fromPart, toPart string) string {
	from := strings.Split(path.Dir(CleanPartPath(fromPart)), "/")
	if len(from) == 1 && from[0] == "." {
		from = nil
	}
	to := strings.Split(CleanPartPath(toPart), "/")

	common := 0
	for common < len(from) && common < len(to)-1 && from[common] == to[common] {
		common++
	}

	var parts []string
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)
	return strings.Join(parts, "/")
}
