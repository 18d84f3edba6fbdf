package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

const (
	defaultMainPart      = "word/document.xml"
	packageRelsPart      = "_rels/.rels"
	officeDocumentRelSfx = "/officeDocument"
)

// docxContainer exposes the body-level paragraphs of a WordprocessingML
// package. Replacing a paragraph rewrites only that paragraph's bytes in the
// main part; every other part of the archive is copied as is.
type docxContainer struct {
	raw      []byte
	zr       *zip.Reader
	mainPart string
	xml      []byte
	paras    []paragraph
	texts    []string
	replaced map[int]string
}

// paragraph records where a body-level <w:p> lives in the main part.
type paragraph struct {
	start, end  int64 // whole element
	startTagEnd int64
	selfClosing bool
	prefix      string
	pPr         []byte
	rPr         []byte
}

func openDocx(data []byte) (*docxContainer, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewValidationError("file", "not a valid .docx archive")
	}

	mainPart := findMainPart(zr)
	doc, err := readPart(zr, mainPart)
	if err != nil {
		return nil, domain.NewValidationError("file", "docx has no readable "+mainPart)
	}

	paras, texts, err := scanParagraphs(doc)
	if err != nil {
		return nil, domain.NewValidationError("file", "docx main part is not well-formed XML")
	}

	return &docxContainer{
		raw:      data,
		zr:       zr,
		mainPart: mainPart,
		xml:      doc,
		paras:    paras,
		texts:    texts,
		replaced: make(map[int]string),
	}, nil
}

// Units returns the trimmed text of each body paragraph.
func (c *docxContainer) Units() []string {
	out := make([]string, len(c.texts))
	for i, t := range c.texts {
		out[i] = strings.TrimSpace(t)
	}
	return out
}

func (c *docxContainer) SetUnit(i int, text string) {
	if i < 0 || i >= len(c.paras) {
		return
	}
	c.replaced[i] = text
}

func (c *docxContainer) Encode() ([]byte, error) {
	if len(c.replaced) == 0 {
		return bytes.Clone(c.raw), nil
	}

	doc := c.splice()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range c.zr.File {
		if f.Name != c.mainPart {
			if err := zw.Copy(f); err != nil {
				return nil, fmt.Errorf("docx: copy %s: %w", f.Name, err)
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   f.Method,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("docx: create %s: %w", f.Name, err)
		}
		if _, err := w.Write(doc); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *docxContainer) splice() []byte {
	var out bytes.Buffer
	out.Grow(len(c.xml))

	var pos int64
	for i, p := range c.paras {
		text, ok := c.replaced[i]
		if !ok {
			continue
		}
		out.Write(c.xml[pos:p.start])
		writeParagraph(&out, c.xml, p, text)
		pos = p.end
	}
	out.Write(c.xml[pos:])
	return out.Bytes()
}

// writeParagraph emits p with its properties intact and its content replaced
// by a single run holding text. Tabs and line breaks become w:tab and w:br.
func writeParagraph(out *bytes.Buffer, src []byte, p paragraph, text string) {
	name := func(local string) string {
		if p.prefix == "" {
			return local
		}
		return p.prefix + ":" + local
	}

	startTag := src[p.start:p.startTagEnd]
	if p.selfClosing {
		out.Write(bytes.TrimRight(startTag, "/> \t\r\n"))
		out.WriteString(">")
	} else {
		out.Write(startTag)
	}
	out.Write(p.pPr)

	out.WriteString("<" + name("r") + ">")
	out.Write(p.rPr)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	var seg strings.Builder
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		out.WriteString("<" + name("t") + ` xml:space="preserve">`)
		xml.EscapeText(out, []byte(seg.String()))
		out.WriteString("</" + name("t") + ">")
		seg.Reset()
	}
	for _, r := range text {
		switch r {
		case '\t':
			flush()
			out.WriteString("<" + name("tab") + "/>")
		case '\n', '\r':
			flush()
			out.WriteString("<" + name("br") + "/>")
		default:
			seg.WriteRune(r)
		}
	}
	flush()

	out.WriteString("</" + name("r") + ">")
	out.WriteString("</" + name("p") + ">")
}

// scanParagraphs walks the main part and records every paragraph that is a
// direct child of the body, together with its text. Paragraphs inside
// tables, content controls or text boxes are not units.
func scanParagraphs(doc []byte) ([]paragraph, []string, error) {
	d := xml.NewDecoder(bytes.NewReader(doc))

	var (
		paras []paragraph
		texts []string
		stack []string

		cur    *paragraph
		text   strings.Builder
		pDepth int // len(stack) of the open body paragraph
		nested int // open w:p elements inside cur
		inText bool
		inRun  bool
	)
	propsAt := int64(-1) // start of the pPr or rPr being captured

	for {
		offset := d.InputOffset()
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			local := t.Name.Local
			parentIsBody := len(stack) == 2 && stack[0] == "document" && stack[1] == "body"
			stack = append(stack, local)

			switch {
			case cur == nil && local == "p" && parentIsBody:
				cur = &paragraph{start: offset, startTagEnd: d.InputOffset(), prefix: t.Name.Space}
				cur.selfClosing = bytes.HasSuffix(doc[offset:d.InputOffset()], []byte("/>"))
				pDepth = len(stack)
				text.Reset()
			case cur == nil:
			case local == "p":
				nested++
			case nested > 0:
			case local == "pPr" && len(stack) == pDepth+1:
				propsAt = offset
			case local == "r":
				inRun = true
			case local == "rPr" && inRun && cur.rPr == nil:
				propsAt = offset
			case local == "t" && inRun:
				inText = true
			case local == "tab" && inRun:
				text.WriteByte('\t')
			case (local == "br" || local == "cr") && inRun:
				text.WriteByte('\n')
			}

		case xml.EndElement:
			local := t.Name.Local
			depth := len(stack)
			if depth == 0 {
				return nil, nil, fmt.Errorf("unbalanced end element %s", local)
			}
			stack = stack[:depth-1]

			if cur == nil {
				continue
			}
			end := d.InputOffset()
			switch {
			case depth == pDepth:
				cur.end = end
				paras = append(paras, *cur)
				texts = append(texts, text.String())
				cur = nil
			case local == "p":
				nested--
			case nested > 0:
			case local == "pPr" && depth == pDepth+1 && propsAt >= 0:
				cur.pPr = bytes.Clone(doc[propsAt:end])
				propsAt = -1
			case local == "rPr" && inRun && propsAt >= 0:
				cur.rPr = bytes.Clone(doc[propsAt:end])
				propsAt = -1
			case local == "r":
				inRun = false
			case local == "t":
				inText = false
			}

		case xml.CharData:
			if cur != nil && inText && nested == 0 {
				text.Write(t)
			}
		}
	}

	if cur != nil || len(stack) != 0 {
		return nil, nil, errors.New("unexpected end of document")
	}
	return paras, texts, nil
}

// findMainPart resolves the main document part from the package
// relationships, falling back to the conventional location.
func findMainPart(zr *zip.Reader) string {
	rels, err := readPart(zr, packageRelsPart)
	if err != nil {
		return defaultMainPart
	}

	var parsed struct {
		Relationships []struct {
			Type   string `xml:"Type,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.Unmarshal(rels, &parsed); err != nil {
		return defaultMainPart
	}
	for _, r := range parsed.Relationships {
		if strings.HasSuffix(r.Type, officeDocumentRelSfx) && r.Target != "" {
			return strings.TrimPrefix(path.Clean("/"+r.Target), "/")
		}
	}
	return defaultMainPart
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
