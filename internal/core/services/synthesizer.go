package services

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/xmlpart"
)

// drawingImageRelID is the id the picture uses inside its own descriptor.
const drawingImageRelID = "rId1"

var partTemplates = template.Must(template.New("parts").
	Funcs(template.FuncMap{"attr": xmlpart.EscapeAttr}).
	Parse(`{{define "drawing"}}<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <xdr:twoCellAnchor editAs="oneCell">
    <xdr:from><xdr:col>{{.Anchor.ColStart}}</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>{{.Anchor.RowStart}}</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
    <xdr:to><xdr:col>{{.Anchor.ColEnd}}</xdr:col><xdr:colOff>9525</xdr:colOff><xdr:row>{{.Anchor.RowEnd}}</xdr:row><xdr:rowOff>9525</xdr:rowOff></xdr:to>
    <xdr:pic>
      <xdr:nvPicPr>
        <xdr:cNvPr id="2" name="{{attr .Name}}">
          <a:extLst>
            <a:ext uri="{FF2B5EF4-FFF2-40B4-BE49-F238E27FC236}">
              <a16:creationId xmlns:a16="http://schemas.microsoft.com/office/drawing/2014/main" id="{{attr .CreationID}}"/>
            </a:ext>
          </a:extLst>
        </xdr:cNvPr>
        <xdr:cNvPicPr><a:picLocks noChangeAspect="1"/></xdr:cNvPicPr>
      </xdr:nvPicPr>
      <xdr:blipFill>
        <a:blip xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" r:link="{{.RelID}}"/>
        <a:stretch><a:fillRect/></a:stretch>
      </xdr:blipFill>
      <xdr:spPr>
        <a:xfrm><a:off x="50000000" y="50000000"/><a:ext cx="9525" cy="9525"/></a:xfrm>
        <a:prstGeom prst="rect"><a:avLst/></a:prstGeom>
      </xdr:spPr>
    </xdr:pic>
    <xdr:clientData/>
  </xdr:twoCellAnchor>
</xdr:wsDr>
{{end}}{{define "rels"}}<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="{{.RelID}}" Type="{{.Type}}" Target="{{attr .Target}}" TargetMode="External"/>
</Relationships>
{{end}}`))

// SynthesizedDrawing holds the rendered drawing part and its descriptor.
// Paths are assigned later by the graph patcher.
type SynthesizedDrawing struct {
	Drawing []byte
	Rels    []byte
}

// SynthesizeDrawing renders the drawing part for obj and a descriptor whose
// single external image relationship targets locator.
func SynthesizeDrawing(obj domain.DrawingObject, locator string) (*SynthesizedDrawing, error) {
	var drawing bytes.Buffer
	err := partTemplates.ExecuteTemplate(&drawing, "drawing", struct {
		domain.DrawingObject
		RelID string
	}{obj, drawingImageRelID})
	if err != nil {
		return nil, fmt.Errorf("rendering drawing: %w", err)
	}

	var rels bytes.Buffer
	err = partTemplates.ExecuteTemplate(&rels, "rels", struct {
		RelID  string
		Type   string
		Target string
	}{drawingImageRelID, domain.RelTypeImage, locator})
	if err != nil {
		return nil, fmt.Errorf("rendering drawing relationships: %w", err)
	}

	return &SynthesizedDrawing{Drawing: drawing.Bytes(), Rels: rels.Bytes()}, nil
}
