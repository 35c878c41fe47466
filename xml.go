package sfdl

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// xmlnsSpace is the namespace the decoder assigns to xmlns:* attributes.
const xmlnsSpace = "xmlns"

// xmlCodec implements Codec for the SFDL XML format.
type xmlCodec struct{}

// XML returns the native SFDL codec.
func XML() Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as an indented XML document with a declaration.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(body) + 1)
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// UnmarshalXML decodes an SFDLFile element.
//
// encoding/xml writes the xmlns:xsd and xmlns:xsi attributes literally but
// reads them back in the xmlns namespace, so they are picked up here.
// Absent namespaces and enum elements take the values New writes.
func (f *File) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain File
	var v plain
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}

	for _, attr := range start.Attr {
		if attr.Name.Space != xmlnsSpace {
			continue
		}
		switch attr.Name.Local {
		case "xsd":
			v.XMLNSXsd = attr.Value
		case "xsi":
			v.XMLNSXsi = attr.Value
		}
	}

	*f = File(v)
	f.applyDefaults()
	return nil
}

// UnmarshalXML decodes a Packages element, which holds at most one
// SFDLPackage.
func (p *Package) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	seen := false
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "SFDLPackage" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			if seen {
				return fmt.Errorf("duplicate SFDLPackage element in %s", start.Name.Local)
			}
			if err := d.DecodeElement(&p.SFDLPackage, &t); err != nil {
				return err
			}
			seen = true
		case xml.EndElement:
			return nil
		}
	}
}

// applyDefaults fills missing namespace declarations and enum values.
func (f *File) applyDefaults() {
	f.ConnectionInfo.applyEnumDefaults()
	if f.XMLNSXsd == "" {
		f.XMLNSXsd = DefaultXMLNSXsd
	}
	if f.XMLNSXsi == "" {
		f.XMLNSXsi = DefaultXMLNSXsi
	}
}
