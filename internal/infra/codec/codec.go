// Package codec turns uploaded JSON, YAML, CSV and XML payloads into ordered lists of generic records.
package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is an upload payload encoding.
type Format string

// Supported payload formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
)

var (
	// ErrUnsupportedFormat is returned for content types and file extensions the codec cannot read.
	ErrUnsupportedFormat = errors.New("unsupported payload format")
	// ErrInvalidPayload is returned when a payload is empty or not a list of records.
	ErrInvalidPayload = errors.New("invalid payload")
)

var contentTypes = map[string]Format{
	"application/json":   FormatJSON,
	"text/json":          FormatJSON,
	"application/yaml":   FormatYAML,
	"application/x-yaml": FormatYAML,
	"text/yaml":          FormatYAML,
	"text/x-yaml":        FormatYAML,
	"text/csv":           FormatCSV,
	"application/csv":    FormatCSV,
	"application/xml":    FormatXML,
	"text/xml":           FormatXML,
}

var extensions = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".csv":  FormatCSV,
	".xml":  FormatXML,
}

// FormatFromContentType maps a Content-Type header to a format. An empty header means JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if strings.TrimSpace(contentType) == "" {
		return FormatJSON, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Wrapf(ErrUnsupportedFormat, "content type %q", contentType)
	}

	format, ok := contentTypes[strings.ToLower(mediaType)]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "content type %q", mediaType)
	}

	return format, nil
}

// FormatFromFilename maps a file extension to a format.
func FormatFromFilename(name string) (Format, error) {
	format, ok := extensions[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "file %q", name)
	}

	return format, nil
}

// ContentType is the canonical media type sent for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/x-yaml"
	case FormatCSV:
		return "text/csv"
	case FormatXML:
		return "application/xml"
	default:
		return "application/json"
	}
}

// Decode reads every record of the payload in document order.
func Decode(format Format, r io.Reader) ([]map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read payload")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrap(ErrInvalidPayload, "payload is empty")
	}

	var records []map[string]any
	switch format {
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatCSV:
		records, err = decodeCSV(data)
	case FormatXML:
		records, err = decodeXML(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.Wrap(ErrInvalidPayload, "payload contains no records")
	}

	return records, nil
}

func decodeJSON(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Keep numbers exact; amounts are parsed into decimals downstream.
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrInvalidPayload, "malformed JSON: %v", err)
	}

	return toRecords(doc)
}

func decodeYAML(data []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrInvalidPayload, "malformed YAML: %v", err)
	}

	return toRecords(doc)
}

// toRecords accepts a list of objects, a single object, or an object whose only field is a list of objects.
func toRecords(doc any) ([]map[string]any, error) {
	switch v := doc.(type) {
	case []any:
		return objectList(v)
	case map[string]any:
		if len(v) == 1 {
			for _, inner := range v {
				if list, ok := inner.([]any); ok && len(list) > 0 {
					if _, isObject := list[0].(map[string]any); isObject {
						return objectList(list)
					}
				}
			}
		}

		return []map[string]any{v}, nil
	default:
		return nil, errors.Wrap(ErrInvalidPayload, "expected a list of records")
	}
}

func objectList(list []any) ([]map[string]any, error) {
	records := make([]map[string]any, 0, len(list))
	for i, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidPayload, "record %d is not an object", i)
		}
		records = append(records, record)
	}

	return records, nil
}
