package document

import (
	"unicode/utf8"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

// plainContainer holds a UTF-8 text file as a single unit.
type plainContainer struct {
	text string
}

func openPlain(data []byte) (*plainContainer, error) {
	if !utf8.Valid(data) {
		return nil, domain.NewValidationError("file", "text file is not valid UTF-8")
	}
	return &plainContainer{text: string(data)}, nil
}

func (c *plainContainer) Units() []string { return []string{c.text} }

func (c *plainContainer) SetUnit(i int, text string) {
	if i == 0 {
		c.text = text
	}
}

func (c *plainContainer) Encode() ([]byte, error) { return []byte(c.text), nil }
