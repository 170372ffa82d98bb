package render

import (
	"archive/zip"
	"fmt"
	"io"
	"strconv"

	"resume-renderer/resume/layout"
)

const (
	styleTitle      = "Title"
	styleHeading    = "Heading1"
	styleEmphasis   = "IntenseQuote"
	styleListBullet = "ListBullet"
	styleNormal     = "Normal"

	bulletNumID    = "1"
	bulletIndent   = 720
	bulletHanging  = 360
	defaultFont    = "Calibri"
	a4WidthTwips   = "11906"
	a4HeightTwips  = "16838"
	pageMarginTwip = "1134"
)

// DOCXWriter produces a WordprocessingML package built from scratch. Entry
// order and headers are fixed so equal input gives equal bytes.
type DOCXWriter struct{}

type docxPart struct {
	name string
	root *xmlNode
}

func (DOCXWriter) Write(w io.Writer, blocks []layout.Block, opts Options) error {
	parts := docxParts(blocks, opts)

	zw := zip.NewWriter(w)
	for _, part := range parts {
		content, err := encodePart(part.root)
		if err != nil {
			return fmt.Errorf("encode %s: %w", part.name, err)
		}
		if part.name == "word/document.xml" {
			if err := validateDocumentXMLStructure(content); err != nil {
				return err
			}
		}

		dst, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		if _, err := dst.Write(content); err != nil {
			return err
		}
	}
	return zw.Close()
}

func docxParts(blocks []layout.Block, opts Options) []docxPart {
	title := ""
	for _, b := range blocks {
		if b.Kind == layout.KindTitle {
			title = b.Text
			break
		}
	}

	return []docxPart{
		{name: "[Content_Types].xml", root: contentTypesXML()},
		{name: "_rels/.rels", root: packageRelsXML()},
		{name: "docProps/core.xml", root: corePropsXML(title)},
		{name: "word/document.xml", root: documentXML(blocks, opts)},
		{name: "word/styles.xml", root: stylesXML()},
		{name: "word/numbering.xml", root: numberingXML()},
		{name: "word/_rels/document.xml.rels", root: documentRelsXML()},
	}
}

func contentTypesXML() *xmlNode {
	override := func(part, contentType string) *xmlNode {
		return el("Override").with("PartName", part).with("ContentType", contentType)
	}
	return el("Types",
		el("Default").with("Extension", "rels").with("ContentType", "application/vnd.openxmlformats-package.relationships+xml"),
		el("Default").with("Extension", "xml").with("ContentType", "application/xml"),
		override("/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"),
		override("/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"),
		override("/word/numbering.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"),
		override("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"),
	).with("xmlns", contentTypeNS)
}

func relationship(id, kind, target string) *xmlNode {
	return el("Relationship").with("Id", id).with("Type", kind).with("Target", target)
}

func packageRelsXML() *xmlNode {
	return el("Relationships",
		relationship("rId1", relNamespace+"/officeDocument", "word/document.xml"),
		relationship("rId2", "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties", "docProps/core.xml"),
	).with("xmlns", pkgRelNS)
}

func documentRelsXML() *xmlNode {
	return el("Relationships",
		relationship("rId1", relNamespace+"/styles", "styles.xml"),
		relationship("rId2", relNamespace+"/numbering", "numbering.xml"),
	).with("xmlns", pkgRelNS)
}

// corePropsXML carries title and author only. Dates are omitted.
func corePropsXML(title string) *xmlNode {
	return el("cp:coreProperties",
		el("dc:title", textNode(title)),
		el("dc:creator", textNode(title)),
	).
		with("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties").
		with("xmlns:dc", "http://purl.org/dc/elements/1.1/")
}

func documentXML(blocks []layout.Block, opts Options) *xmlNode {
	accent, custom := accentHex(opts.AccentColor)
	headingColor := ""
	if custom {
		headingColor = accent
	}

	body := el("w:body")
	for _, b := range blocks {
		switch b.Kind {
		case layout.KindTitle:
			body.add(paragraph(styleTitle, run(b.Text, colorProps(headingColor))))
		case layout.KindSectionHeading:
			body.add(paragraph(styleHeading, run(b.Text, colorProps(headingColor))))
		case layout.KindEmphasis:
			body.add(paragraph(styleEmphasis,
				run(b.Lead, el("w:rPr", el("w:b"))),
				run(b.Rest(), nil),
			))
		case layout.KindContactLine:
			body.add(paragraph("", run(b.Text, runProps(StyleMap[layout.KindContactLine]))))
		case layout.KindBody:
			body.add(paragraph("", run(b.Text, nil)))
		case layout.KindDateLine:
			body.add(paragraph("", run(b.Text, el("w:rPr", el("w:i")))))
		case layout.KindBulletList:
			for _, item := range b.Items {
				body.add(paragraph(styleListBullet, run(item, nil)))
			}
		}
	}

	body.add(el("w:sectPr",
		el("w:pgSz").with("w:w", a4WidthTwips).with("w:h", a4HeightTwips),
		el("w:pgMar").
			with("w:top", pageMarginTwip).with("w:right", pageMarginTwip).
			with("w:bottom", pageMarginTwip).with("w:left", pageMarginTwip).
			with("w:header", "708").with("w:footer", "708").with("w:gutter", "0"),
	))

	return el("w:document", body).
		with("xmlns:w", wmlNamespace).
		with("xmlns:r", relNamespace)
}

func paragraph(style string, runs ...*xmlNode) *xmlNode {
	p := el("w:p")
	if style != "" {
		p.add(el("w:pPr", val("w:pStyle", style)))
	}
	return p.add(runs...)
}

// run returns nil for empty text so callers can pass it straight to add.
func run(text string, props *xmlNode) *xmlNode {
	if text == "" {
		return nil
	}
	return el("w:r").
		add(props).
		add(el("w:t", textNode(text)).with("xml:space", "preserve"))
}

func colorProps(color string) *xmlNode {
	if color == "" {
		return nil
	}
	return el("w:rPr", val("w:color", color))
}

// runProps renders a RunStyle as <w:rPr>, children in schema order.
func runProps(style RunStyle) *xmlNode {
	rPr := el("w:rPr")
	if style.Bold {
		rPr.add(el("w:b"))
	}
	if style.Italic {
		rPr.add(el("w:i"))
	}
	if style.Color != "" {
		rPr.add(val("w:color", style.Color))
	}
	if style.Size > 0 {
		rPr.add(val("w:sz", halfPoints(style.Size)), val("w:szCs", halfPoints(style.Size)))
	}
	return rPr
}

func styleDef(id string, pPr *xmlNode, kind layout.Kind) *xmlNode {
	style := StyleMap[kind]
	if style.Color == "" {
		style.Color = DefaultAccentColor
	}
	return el("w:style",
		val("w:name", id),
		val("w:basedOn", styleNormal),
		val("w:next", styleNormal),
		el("w:qFormat"),
		pPr,
		runProps(style),
	).with("w:type", "paragraph").with("w:styleId", id)
}

func spacing(before, after int) *xmlNode {
	return el("w:spacing").
		with("w:before", strconv.Itoa(before)).
		with("w:after", strconv.Itoa(after))
}

func stylesXML() *xmlNode {
	body := StyleMap[layout.KindBody]

	defaults := el("w:docDefaults",
		el("w:rPrDefault", el("w:rPr",
			el("w:rFonts").
				with("w:ascii", defaultFont).with("w:hAnsi", defaultFont).
				with("w:eastAsia", defaultFont).with("w:cs", defaultFont),
			val("w:color", body.Color),
			val("w:sz", halfPoints(body.Size)),
			val("w:szCs", halfPoints(body.Size)),
		)),
		el("w:pPrDefault", el("w:pPr", spacing(0, 80))),
	)

	normal := el("w:style",
		val("w:name", styleNormal),
		el("w:qFormat"),
	).with("w:type", "paragraph").with("w:default", "1").with("w:styleId", styleNormal)

	return el("w:styles",
		defaults,
		normal,
		styleDef(styleTitle, el("w:pPr",
			spacing(0, 120),
			val("w:jc", "center"),
		), layout.KindTitle),
		styleDef(styleHeading, el("w:pPr",
			el("w:keepNext"),
			spacing(240, 80),
			val("w:outlineLvl", "0"),
		), layout.KindSectionHeading),
		styleDef(styleEmphasis, el("w:pPr",
			el("w:keepNext"),
			spacing(160, 40),
		), layout.KindEmphasis),
		styleDef(styleListBullet, el("w:pPr",
			el("w:numPr", val("w:ilvl", "0"), val("w:numId", bulletNumID)),
			spacing(0, 40),
			el("w:ind").
				with("w:left", strconv.Itoa(bulletIndent)).
				with("w:hanging", strconv.Itoa(bulletHanging)),
		), layout.KindBulletList),
	).with("xmlns:w", wmlNamespace)
}

func numberingXML() *xmlNode {
	level := el("w:lvl",
		val("w:start", "1"),
		val("w:numFmt", "bullet"),
		val("w:lvlText", "•"),
		val("w:lvlJc", "left"),
		el("w:pPr", el("w:ind").
			with("w:left", strconv.Itoa(bulletIndent)).
			with("w:hanging", strconv.Itoa(bulletHanging))),
	).with("w:ilvl", "0")

	return el("w:numbering",
		el("w:abstractNum",
			val("w:multiLevelType", "hybridMultilevel"),
			level,
		).with("w:abstractNumId", "0"),
		el("w:num", val("w:abstractNumId", "0")).with("w:numId", bulletNumID),
	).with("xmlns:w", wmlNamespace)
}
