package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelsPathFor(t *testing.T) {
	assert.Equal(t, "xl/_rels/workbook.xml.rels", RelsPathFor(WorkbookPath))
	assert.Equal(t, "xl/worksheets/_rels/sheet1.xml.rels", RelsPathFor(DefaultSheetPath))
	assert.Equal(t, "xl/drawings/_rels/drawing3.xml.rels", RelsPathFor(`/xl\drawings\drawing3.xml`))
	assert.Equal(t, "_rels/.rels", RelsPathFor(""))
}

func TestSourceOfRels(t *testing.T) {
	assert.Equal(t, DefaultSheetPath, SourceOfRels("xl/worksheets/_rels/sheet1.xml.rels"))
	assert.Equal(t, WorkbookPath, SourceOfRels("xl/_rels/workbook.xml.rels"))
	assert.Equal(t, "", SourceOfRels("_rels/.rels"))
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		source   string
		target   string
		expected string
	}{
		{DefaultSheetPath, "../drawings/drawing1.xml", "xl/drawings/drawing1.xml"},
		{WorkbookPath, "worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{WorkbookPath, "/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{WorkbookPath, `worksheets\sheet3.xml`, "xl/worksheets/sheet3.xml"},
		{"", "xl/workbook.xml", "xl/workbook.xml"},
	}
	for _, tt := range tests {
		t.Run(tt.source+"->"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveTarget(tt.source, tt.target))
		})
	}
}

func TestRelativeTarget(t *testing.T) {
	assert.Equal(t, "../drawings/drawing1.xml", RelativeTarget(DefaultSheetPath, "xl/drawings/drawing1.xml"))
	assert.Equal(t, "worksheets/sheet1.xml", RelativeTarget(WorkbookPath, DefaultSheetPath))
	assert.Equal(t, "xl/workbook.xml", RelativeTarget("", WorkbookPath))

	// Round trip through ResolveTarget.
	from, to := "xl/worksheets/sheet7.xml", "xl/drawings/drawing12.xml"
	assert.Equal(t, to, ResolveTarget(from, RelativeTarget(from, to)))
}

func TestRelationship_IsExternal(t *testing.T) {
	assert.True(t, Relationship{Mode: TargetExternal}.IsExternal())
	assert.False(t, Relationship{Mode: TargetInternal}.IsExternal())
	assert.False(t, Relationship{}.IsExternal())
}
