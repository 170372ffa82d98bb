package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	wmlNamespace  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	pkgRelNS      = "http://schemas.openxmlformats.org/package/2006/relationships"
	contentTypeNS = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// xmlNode is a small element tree. Prefixed names (w:p) are kept verbatim in
// Name.Local and the matching xmlns attributes live on the part root.
type xmlNode struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*xmlNode
	Text     string
	IsText   bool
}

func el(name string, children ...*xmlNode) *xmlNode {
	return (&xmlNode{Name: xml.Name{Local: name}}).add(children...)
}

func (n *xmlNode) with(key, value string) *xmlNode {
	n.Attr = append(n.Attr, xml.Attr{Name: xml.Name{Local: key}, Value: value})
	return n
}

func (n *xmlNode) add(children ...*xmlNode) *xmlNode {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func textNode(text string) *xmlNode {
	return &xmlNode{IsText: true, Text: text}
}

// val builds the common <w:x w:val="..."/> leaf.
func val(name, value string) *xmlNode {
	return el(name).with("w:val", value)
}

func encodeXMLNode(encoder *xml.Encoder, node *xmlNode) error {
	if node.IsText {
		return encoder.EncodeToken(xml.CharData([]byte(node.Text)))
	}
	start := xml.StartElement{Name: node.Name, Attr: node.Attr}
	if err := encoder.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := encodeXMLNode(encoder, child); err != nil {
			return err
		}
	}
	return encoder.EncodeToken(start.End())
}

// encodePart serializes a part with the standard XML declaration.
func encodePart(root *xmlNode) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")

	encoder := xml.NewEncoder(&buf)
	if err := encodeXMLNode(encoder, root); err != nil {
		return nil, err
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// validateDocumentXMLStructure rejects nested paragraphs and run properties
// that follow run text. Both make Word refuse to open the file.
func validateDocumentXMLStructure(data []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var stack []xml.Name
	type runState struct {
		seenText bool
	}
	var runs []runState

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(string(data), 5))
		}
		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			if isWmlElement(t.Name, "p") {
				for i := len(stack) - 2; i >= 0; i-- {
					if isWmlElement(stack[i], "p") {
						return fmt.Errorf("document.xml has nested <w:p>")
					}
				}
			}
			if isWmlElement(t.Name, "r") {
				runs = append(runs, runState{})
			}
			if isWmlElement(t.Name, "t") && len(runs) > 0 {
				runs[len(runs)-1].seenText = true
			}
			if isWmlElement(t.Name, "rPr") && len(runs) > 0 && runs[len(runs)-1].seenText {
				return fmt.Errorf("document.xml has <w:rPr> after <w:t> in a run")
			}
		case xml.EndElement:
			if isWmlElement(t.Name, "r") && len(runs) > 0 {
				runs = runs[:len(runs)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return nil
}

func isWmlElement(name xml.Name, local string) bool {
	return name.Local == local && name.Space == wmlNamespace
}

func firstLines(text string, count int) string {
	lines := strings.SplitN(text, "\n", count+1)
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n")
}
