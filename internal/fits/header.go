package fits

import (
	"fmt"

	"github.com/astrogo/fitsio"
)

// Header provides key lookup over an HDU's header, decoupled from the
// container library so the trim selector can consume it. The header
// is fully decoded in memory, so a Header stays valid after the file
// is closed.
type Header struct {
	hdr *fitsio.Header
}

// Value returns the string form of the card named key: string values
// verbatim, numeric and boolean values in their default formatting.
func (h Header) Value(key string) (string, bool) {
	if h.hdr == nil {
		return "", false
	}
	card := h.hdr.Get(key)
	if card == nil {
		return "", false
	}
	if s, ok := card.Value.(string); ok {
		return s, true
	}
	return fmt.Sprint(card.Value), true
}
