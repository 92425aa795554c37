package extraction

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX returns the body paragraphs of a DOCX document joined by newlines.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	paragraphs, err := bodyParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "malformed document.xml", Cause: err}
	}
	return strings.Join(paragraphs, "\n"), nil
}

// bodyParagraphs walks WordprocessingML and returns the text of each w:p that
// is a direct child of w:body, in document order. Table cells and text boxes
// are not body paragraphs and are skipped.
func bodyParagraphs(documentXML string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		stack      []string
		inBodyPara bool
		paraDepth  int // nesting depth of w:p elements
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch name {
			case "p":
				paraDepth++
				if paraDepth == 1 && len(stack) > 0 && stack[len(stack)-1] == "body" {
					inBodyPara = true
					current.Reset()
				}
			case "t":
				inText = inBodyPara && paraDepth == 1
			case "tab":
				if inBodyPara && paraDepth == 1 {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inBodyPara && paraDepth == 1 {
					current.WriteByte('\n')
				}
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if paraDepth == 1 && inBodyPara {
					paragraphs = append(paragraphs, current.String())
					inBodyPara = false
				}
				paraDepth--
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
