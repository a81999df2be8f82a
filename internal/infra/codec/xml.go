package codec

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
)

// attributePrefix marks XML attributes in decoded records, e.g. <transaction id="7"> yields "@_id".
const attributePrefix = "@_"

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// decodeXML returns one record per child of the document root.
func decodeXML(data []byte) ([]map[string]any, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(ErrInvalidPayload, "malformed XML: %v", err)
	}

	records := make([]map[string]any, 0, len(root.Children))
	for _, child := range root.Children {
		value := nodeValue(child)
		record, ok := value.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidPayload, "element <%s> is not a record", child.XMLName.Local)
		}
		records = append(records, record)
	}

	return records, nil
}

// nodeValue is the text of a leaf without attributes, otherwise a map of attributes and children.
// Repeated child elements collapse into a list; a single child stays a single value.
func nodeValue(node xmlNode) any {
	text := strings.TrimSpace(node.Content)
	if len(node.Attrs) == 0 && len(node.Children) == 0 {
		return text
	}

	result := make(map[string]any, len(node.Attrs)+len(node.Children))
	for _, attr := range node.Attrs {
		result[attributePrefix+attr.Name.Local] = attr.Value
	}

	for _, child := range node.Children {
		name := child.XMLName.Local
		value := nodeValue(child)

		switch existing := result[name].(type) {
		case nil:
			result[name] = value
		case []any:
			result[name] = append(existing, value)
		default:
			result[name] = []any{existing, value}
		}
	}

	if text != "" && len(node.Children) == 0 {
		result["#text"] = text
	}

	return result
}
