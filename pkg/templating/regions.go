package templating

import (
	"errors"
	"strings"
)

// ErrRegionNotFound is returned when a region's start marker, or an end
// marker following it, cannot be found in the document.
var ErrRegionNotFound = errors.New("region markers not found")

// regionBounds returns the byte offsets of a region's interior: the end of
// the first start marker and the beginning of the first end marker after it.
func regionBounds(doc, start, end string) (int, int, bool) {
	if start == "" || end == "" {
		return 0, 0, false
	}
	i := strings.Index(doc, start)
	if i < 0 {
		return 0, 0, false
	}
	from := i + len(start)
	j := strings.Index(doc[from:], end)
	if j < 0 {
		return 0, 0, false
	}
	return from, from + j, true
}

// SubstituteRegion replaces the interior of the first start/end marker pair
// in doc with content. Both markers are kept as they are. If either marker is
// missing, doc is returned unchanged together with ErrRegionNotFound.
func SubstituteRegion(doc, start, end, content string) (string, error) {
	from, to, ok := regionBounds(doc, start, end)
	if !ok {
		return doc, ErrRegionNotFound
	}
	var b strings.Builder
	b.Grow(len(doc) - (to - from) + len(content))
	b.WriteString(doc[:from])
	b.WriteString(content)
	b.WriteString(doc[to:])
	return b.String(), nil
}

// RegionContent returns the current interior of a region.
func RegionContent(doc, start, end string) (string, bool) {
	from, to, ok := regionBounds(doc, start, end)
	if !ok {
		return "", false
	}
	return doc[from:to], true
}
