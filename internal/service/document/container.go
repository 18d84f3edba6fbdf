package document

import (
	"fmt"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

// Container is an opened document whose text units can be read and
// replaced before it is encoded back to its original format.
type Container interface {
	// Units returns the text of every unit in document order.
	Units() []string
	// SetUnit replaces the text of unit i.
	SetUnit(i int, text string)
	// Encode serializes the container, including every replacement made so far.
	Encode() ([]byte, error)
}

// Open parses data as a container of the given format.
func Open(format domain.Format, data []byte) (Container, error) {
	switch format {
	case domain.FormatDocx:
		return openDocx(data)
	case domain.FormatTxt:
		return openPlain(data)
	}
	return nil, fmt.Errorf("open %q: %w", format, domain.ErrUnsupportedFormat)
}
