package services

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/logger"
	"github.com/sheetstrike/sheetstrike-cli/internal/xmlpart"
)

var drawingPartPattern = regexp.MustCompile(`^xl/drawings/drawing\d+\.xml$`)

// Worksheet children that the schema places after <drawing>.
var afterDrawing = []string{
	"legacyDrawing", "legacyDrawingHF", "drawingHF", "picture", "oleObjects",
	"controls", "webPublishItems", "tableParts", "extLst",
}

// GraphResult describes what a graph patch changed.
type GraphResult struct {
	// DrawingNumber is N in xl/drawings/drawingN.xml.
	DrawingNumber int

	// DrawingPath is the new drawing part path.
	DrawingPath string

	// Worksheet is the targeted worksheet part.
	Worksheet string

	// WorksheetFound is false when the worksheet part does not exist.
	WorksheetFound bool

	// WorksheetWired is true when a <drawing> element was inserted.
	WorksheetWired bool

	// RelationshipID is the id added to the worksheet descriptor.
	RelationshipID string

	// Changes holds every part written, already applied to the package.
	Changes *domain.Changeset
}

// GraphPatcher wires a synthesized drawing into a package.
type GraphPatcher struct{}

// NewGraphPatcher creates a new graph patcher.
func NewGraphPatcher() *GraphPatcher {
	return &GraphPatcher{}
}

// Patch adds the drawing as the next free drawing part and references it from
// the content-type manifest and the worksheet named sheet ("" for the first
// one). Every edit is staged first; the package is modified only when all of
// them succeed.
func (g *GraphPatcher) Patch(pkg *domain.Package, drawing *SynthesizedDrawing, sheet string) (*GraphResult, error) {
	num := NextDrawingNumber(pkg)
	res := &GraphResult{
		DrawingNumber: num,
		DrawingPath:   fmt.Sprintf("%s/drawing%d.xml", domain.DrawingsDir, num),
		Changes:       &domain.Changeset{},
	}
	logger.Debug("Drawing part: %s", res.DrawingPath)

	res.Changes.Stage(res.DrawingPath, drawing.Drawing)
	res.Changes.Stage(domain.RelsPathFor(res.DrawingPath), drawing.Rels)

	manifest, err := registerContentType(pkg, res.DrawingPath)
	if err != nil {
		return nil, err
	}
	if manifest != nil {
		res.Changes.Stage(domain.ContentTypesPath, manifest)
	}

	res.Worksheet = resolveWorksheet(pkg, sheet)
	res.WorksheetFound = res.Worksheet != "" && pkg.Has(res.Worksheet)
	if res.WorksheetFound {
		if err := wireWorksheet(pkg, res); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("Worksheet %q not found, skipping worksheet wiring", sheetLabel(sheet, res.Worksheet))
	}

	res.Changes.Apply(pkg)
	return res, nil
}

// NextDrawingNumber returns one more than the number of drawing parts,
// advancing past numbers already taken when existing numbering has gaps.
func NextDrawingNumber(pkg *domain.Package) int {
	num := len(pkg.Match(drawingPartPattern)) + 1
	for pkg.Has(fmt.Sprintf("%s/drawing%d.xml", domain.DrawingsDir, num)) {
		num++
	}
	return num
}

// registerContentType returns the edited manifest, or nil when it already
// declares everything the drawing needs.
func registerContentType(pkg *domain.Package, drawingPath string) ([]byte, error) {
	data, ok := pkg.Get(domain.ContentTypesPath)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidContainer, domain.ContentTypesPath)
	}
	doc, err := xmlpart.Parse(domain.ContentTypesPath, data)
	if err != nil {
		return nil, err
	}

	partName := "/" + drawingPath
	hasOverride := false
	for _, el := range doc.ChildrenNamed("Override") {
		if name, _ := el.AttrValue("", "PartName"); strings.EqualFold(name, partName) {
			hasOverride = true
			break
		}
	}
	hasRelsDefault := false
	for _, el := range doc.ChildrenNamed("Default") {
		if ext, _ := el.AttrValue("", "Extension"); strings.EqualFold(ext, "rels") {
			hasRelsDefault = true
			break
		}
	}

	ed := doc.Edit()
	if !hasRelsDefault {
		ed.AppendChild(fmt.Sprintf(`<%s Extension="rels" ContentType="%s"/>`,
			doc.Prefixed("Default"), domain.ContentTypeRelationships))
	}
	if !hasOverride {
		ed.AppendChild(fmt.Sprintf(`<%s PartName="%s" ContentType="%s"/>`,
			doc.Prefixed("Override"), xmlpart.EscapeAttr(partName), domain.ContentTypeDrawing))
	} else {
		logger.Debug("Content type override for %s already present", partName)
	}
	if !ed.Changed() {
		return nil, nil
	}
	return ed.Bytes()
}

// wireWorksheet stages the worksheet <drawing> reference and the worksheet
// descriptor entry. Both parts are parsed before anything is staged.
func wireWorksheet(pkg *domain.Package, res *GraphResult) error {
	sheetData, _ := pkg.Get(res.Worksheet)
	sheetDoc, err := xmlpart.Parse(res.Worksheet, sheetData)
	if err != nil {
		return err
	}

	relsPath := domain.RelsPathFor(res.Worksheet)
	var relsDoc *xmlpart.Document
	used := make(map[string]bool)
	if relsData, ok := pkg.Get(relsPath); ok {
		relsDoc, err = xmlpart.Parse(relsPath, relsData)
		if err != nil {
			return err
		}
		for _, rel := range relationshipsOf(relsDoc) {
			used[rel.ID] = true
		}
	}
	res.RelationshipID = freeRelationshipID(res.DrawingNumber, used)

	if sheetDoc.HasChild("drawing") {
		logger.Debug("Worksheet %s already references a drawing", res.Worksheet)
	} else {
		out, err := insertDrawingRef(sheetDoc, res.RelationshipID)
		if err != nil {
			return err
		}
		res.Changes.Stage(res.Worksheet, out)
		res.WorksheetWired = true
	}

	entry := fmt.Sprintf(`Id="%s" Type="%s" Target="%s"`, res.RelationshipID, domain.RelTypeDrawing,
		xmlpart.EscapeAttr(domain.RelativeTarget(res.Worksheet, res.DrawingPath)))
	if relsDoc == nil {
		res.Changes.Stage(relsPath, []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+"\n"+
			`<Relationships xmlns="`+domain.RelationshipsNS+`"><Relationship `+entry+`/></Relationships>`))
		return nil
	}

	ed := relsDoc.Edit()
	ed.AppendChild("<" + relsDoc.Prefixed("Relationship") + " " + entry + "/>")
	out, err := ed.Bytes()
	if err != nil {
		return err
	}
	res.Changes.Stage(relsPath, out)
	return nil
}

func insertDrawingRef(doc *xmlpart.Document, relID string) ([]byte, error) {
	ed := doc.Edit()

	prefix, ok := doc.PrefixFor(domain.OfficeRelationshipsNS)
	if !ok || prefix == "" {
		prefix = "r"
		for i := 1; doc.DeclaresPrefix(prefix); i++ {
			prefix = "r" + strconv.Itoa(i)
		}
		ed.DeclareNamespace(prefix, domain.OfficeRelationshipsNS)
	}

	ref := fmt.Sprintf(`<%s %s:id="%s"/>`, doc.Prefixed("drawing"), prefix, relID)
	if next, ok := doc.FirstChildOf(afterDrawing...); ok {
		ed.InsertBefore(next, ref)
	} else {
		ed.AppendChild(ref)
	}
	return ed.Bytes()
}

// freeRelationshipID prefers rId<n> and takes the next free number otherwise.
func freeRelationshipID(n int, used map[string]bool) string {
	for {
		id := "rId" + strconv.Itoa(n)
		if !used[id] {
			return id
		}
		n++
	}
}

// workbookXML is the part of xl/workbook.xml needed to find sheets.
type workbookXML struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

// resolveWorksheet maps a sheet name to its worksheet part through the
// workbook and its descriptor. An empty name selects the first sheet, falling
// back to xl/worksheets/sheet1.xml when the workbook cannot be read. Returns ""
// when a named sheet does not exist.
func resolveWorksheet(pkg *domain.Package, sheet string) string {
	fallback := ""
	if sheet == "" {
		fallback = domain.DefaultSheetPath
	}

	data, ok := pkg.Get(domain.WorkbookPath)
	if !ok {
		return fallback
	}
	var wb workbookXML
	if err := xml.Unmarshal(data, &wb); err != nil {
		logger.Debug("Unreadable workbook, using %q: %v", fallback, err)
		return fallback
	}

	rid := ""
	for _, s := range wb.Sheets {
		if sheet == "" || strings.EqualFold(s.Name, sheet) {
			rid = s.RID
			break
		}
	}
	if rid == "" {
		return fallback
	}

	relsPath := domain.RelsPathFor(domain.WorkbookPath)
	relsData, ok := pkg.Get(relsPath)
	if !ok {
		return fallback
	}
	doc, err := xmlpart.Parse(relsPath, relsData)
	if err != nil {
		return fallback
	}
	for _, rel := range relationshipsOf(doc) {
		if rel.ID == rid && !rel.IsExternal() {
			return domain.ResolveTarget(domain.WorkbookPath, rel.Target)
		}
	}
	return fallback
}

func sheetLabel(sheet, part string) string {
	if sheet != "" {
		return sheet
	}
	return part
}
