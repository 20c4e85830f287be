package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Static package parts of the .docx container.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partFooter       = "word/footer1.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
%s</Types>
`

const footerContentTypeXML = `<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>
`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
%s</Relationships>
`

const footerRelXML = `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>
`

// packageParts assembles the zip container from the rendered XML parts.
// footerXML may be nil when no footer was requested.
func (b *Builder) packageParts(documentXML, stylesXML, footerXML []byte) ([]byte, error) {
	footerContentType := ""
	footerRel := ""
	if footerXML != nil {
		footerContentType = footerContentTypeXML
		footerRel = footerRelXML
	}

	parts := []struct {
		name string
		data []byte
	}{
		{partContentTypes, fmt.Appendf(nil, contentTypesXML, footerContentType)},
		{partRootRels, []byte(rootRelsXML)},
		{partDocumentRels, fmt.Appendf(nil, documentRelsXML, footerRel)},
		{partDocument, documentXML},
		{partStyles, stylesXML},
	}
	if footerXML != nil {
		parts = append(parts, struct {
			name string
			data []byte
		}{partFooter, footerXML})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating package part %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("writing package part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}
