package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

// Parse streams a supplier XML feed and extracts one raw entry per
// item element, in document order. An item yields an entry only when
// both its SKU and stock elements are present; everything else in the
// item is ignored, so unknown elements never break parsing. When a
// mapped element repeats inside one item the last occurrence wins.
func Parse(r io.Reader, p Profile) ([]inventory.RawEntry, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.CharsetReader = charset.NewReaderLabel

	var entries []inventory.RawEntry
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode feed: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != p.Elements.Item {
			continue
		}

		entry, complete, err := parseItem(dec, p.Elements)
		if err != nil {
			return nil, fmt.Errorf("decode feed item: %w", err)
		}
		if complete {
			entries = append(entries, entry)
		}
	}
}

// parseItem consumes tokens up to the item's closing tag. It returns
// complete=false when the item lacks a SKU or stock element.
func parseItem(dec *xml.Decoder, m ElementMap) (entry inventory.RawEntry, complete bool, err error) {
	var hasSKU, hasStock bool

	for {
		tok, err := dec.Token()
		if err != nil {
			return entry, false, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var text string
			switch t.Name.Local {
			case m.SKU:
				if err := dec.DecodeElement(&text, &t); err != nil {
					return entry, false, err
				}
				entry.Identifier = text
				hasSKU = true
			case m.Stock:
				if err := dec.DecodeElement(&text, &t); err != nil {
					return entry, false, err
				}
				entry.Stock = text
				hasStock = true
			case m.Name:
				if err := dec.DecodeElement(&text, &t); err != nil {
					return entry, false, err
				}
				entry.Name = text
			case m.Group:
				if err := dec.DecodeElement(&text, &t); err != nil {
					return entry, false, err
				}
				entry.Group = text
			default:
				if err := dec.Skip(); err != nil {
					return entry, false, err
				}
			}
		case xml.EndElement:
			return entry, hasSKU && hasStock, nil
		}
	}
}
