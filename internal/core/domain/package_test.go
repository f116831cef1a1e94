package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPartPath(t *testing.T) {
	assert.Equal(t, "xl/worksheets/sheet1.xml", CleanPartPath(`xl\worksheets\sheet1.xml`))
	assert.Equal(t, "xl/drawings/drawing1.xml", CleanPartPath("/xl/drawings/drawing1.xml"))
	assert.Equal(t, "[Content_Types].xml", CleanPartPath("[Content_Types].xml"))
}

func TestPackage_PutKeepsOrderAndOverwrites(t *testing.T) {
	pkg := NewPackage()
	pkg.Put("b.xml", []byte("1"))
	pkg.Put("a.xml", []byte("2"))
	pkg.Put("/b.xml", []byte("3"))

	assert.Equal(t, []string{"b.xml", "a.xml"}, pkg.Paths())
	data, ok := pkg.Get("b.xml")
	assert.True(t, ok)
	assert.Equal(t, "3", string(data))
	assert.Equal(t, 2, pkg.Len())
}

func TestPackage_Match(t *testing.T) {
	pkg := NewPackage()
	pkg.Put("xl/drawings/drawing1.xml", nil)
	pkg.Put("xl/drawings/_rels/drawing1.xml.rels", nil)
	pkg.Put("xl/charts/chart1.xml", nil)

	re := regexp.MustCompile(`^xl/drawings/drawing\d+\.xml$`)
	assert.Equal(t, []string{"xl/drawings/drawing1.xml"}, pkg.Match(re))
}

func TestChangeset_ApplyIsAllAtOnce(t *testing.T) {
	pkg := NewPackage()
	pkg.Put("a.xml", []byte("old"))

	var cs Changeset
	cs.Stage("a.xml", []byte("first"))
	cs.Stage("c.xml", []byte("new"))
	cs.Stage("a.xml", []byte("second"))

	data, _ := pkg.Get("a.xml")
	assert.Equal(t, "old", string(data), "staging must not touch the package")

	staged, ok := cs.Lookup("a.xml")
	assert.True(t, ok)
	assert.Equal(t, "second", string(staged))
	assert.Equal(t, []string{"a.xml", "c.xml"}, cs.Paths())

	cs.Apply(pkg)
	data, _ = pkg.Get("a.xml")
	assert.Equal(t, "second", string(data))
	assert.True(t, pkg.Has("c.xml"))
}

func TestRelsPaths(t *testing.T) {
	assert.Equal(t, "xl/worksheets/_rels/sheet1.xml.rels", RelsPathFor("xl/worksheets/sheet1.xml"))
	assert.Equal(t, "_rels/.rels", RelsPathFor(""))
	assert.Equal(t, "xl/worksheets/sheet1.xml", SourceOfRels("xl/worksheets/_rels/sheet1.xml.rels"))
	assert.Equal(t, "", SourceOfRels("_rels/.rels"))
}

func TestResolveAndRelativeTarget(t *testing.T) {
	assert.Equal(t, "xl/drawings/drawing1.xml",
		ResolveTarget("xl/worksheets/sheet1.xml", "../drawings/drawing1.xml"))
	assert.Equal(t, "xl/worksheets/sheet2.xml",
		ResolveTarget("xl/workbook.xml", "/xl/worksheets/sheet2.xml"))
	assert.Equal(t, "xl/workbook.xml", ResolveTarget("", "xl/workbook.xml"))

	assert.Equal(t, "../drawings/drawing3.xml",
		RelativeTarget("xl/worksheets/sheet1.xml", "xl/drawings/drawing3.xml"))
	assert.Equal(t, "drawings/drawing1.xml",
		RelativeTarget("xl/workbook.xml", "xl/drawings/drawing1.xml"))
}
