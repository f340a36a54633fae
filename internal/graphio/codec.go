package graphio

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vk/graphlib/internal/graph"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for encodings graphio does not support.
var ErrUnknownFormat = errors.New("unknown graph format")

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode renders g in the given format.
func Encode[N, E any](f Format, g *graph.Graph[N, E]) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(g)
	case FormatYAML:
		return EncodeYAML(g)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// Decode parses data in the given format. JSON input is repaired when it is
// not strictly valid.
func Decode[N, E any](f Format, data []byte) (*graph.Graph[N, E], error) {
	switch f {
	case FormatJSON:
		return DecodeJSONLenient[N, E](data)
	case FormatYAML:
		return DecodeYAML[N, E](data)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// EncodeJSON renders g as an indented JSON document.
func EncodeJSON[N, E any](g *graph.Graph[N, E]) ([]byte, error) {
	data, err := json.MarshalIndent(Write(g), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode graph as json")
	}
	return data, nil
}

// DecodeJSON parses a strict JSON document.
func DecodeJSON[N, E any](data []byte) (*graph.Graph[N, E], error) {
	var doc Document[N, E]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode graph json")
	}
	return Read(&doc)
}

// DecodeJSONLenient is DecodeJSON that retries once on repaired input when the
// payload is not valid JSON, e.g. trailing commas or unquoted keys.
func DecodeJSONLenient[N, E any](data []byte) (*graph.Graph[N, E], error) {
	var doc Document[N, E]
	err := json.Unmarshal(data, &doc)
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return nil, errors.Wrapf(err, "decode graph json (repair failed: %v)", repairErr)
		}
		doc = Document[N, E]{}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, errors.Wrap(err, "decode repaired graph json")
		}
	}
	return Read(&doc)
}

// EncodeYAML renders g as a YAML document.
func EncodeYAML[N, E any](g *graph.Graph[N, E]) ([]byte, error) {
	data, err := yaml.Marshal(Write(g))
	if err != nil {
		return nil, errors.Wrap(err, "encode graph as yaml")
	}
	return data, nil
}

// DecodeYAML parses a YAML document.
func DecodeYAML[N, E any](data []byte) (*graph.Graph[N, E], error) {
	var doc Document[N, E]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode graph yaml")
	}
	return Read(&doc)
}
