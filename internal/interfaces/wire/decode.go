package wire

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/nvmock/backend/internal/domain/records"
)

// DecodePayload parses raw XML bytes into the opaque field mapping the
// store works with. Element names are not validated; whatever the document
// carries passes through. Conventions for nested content:
//
//   - a text-only element becomes a plain string
//   - attributes become "@name" keys in a nested mapping
//   - text alongside attributes or children lands under "#text"
//   - repeated sibling elements collapse into a list
//
// Returns ErrMalformedPayload on XML syntax errors.
func DecodePayload(data []byte) (*records.FieldMap, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, records.ErrMalformedPayload
	}
	root := doc.Root()
	if root == nil {
		return nil, records.ErrMalformedPayload
	}
	out := records.NewFieldMap()
	out.Set(root.Tag, elementValue(root))
	return out, nil
}

func elementValue(el *etree.Element) records.Value {
	children := el.ChildElements()
	text := strings.TrimSpace(el.Text())

	if len(children) == 0 && len(el.Attr) == 0 {
		return text
	}

	m := records.NewFieldMap()
	for _, attr := range el.Attr {
		m.Set(records.AttrPrefix+attr.Key, attr.Value)
	}
	for _, child := range children {
		v := elementValue(child)
		existing, ok := m.Get(child.Tag)
		if !ok {
			m.Set(child.Tag, v)
			continue
		}
		if list, isList := existing.([]records.Value); isList {
			m.Set(child.Tag, append(list, v))
		} else {
			m.Set(child.Tag, []records.Value{existing, v})
		}
	}
	if text != "" {
		m.Set(records.TextKey, text)
	}
	return m
}
