package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

// Encoding is a text serialization.
type Encoding string

// Supported encodings.
const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

const lz4Suffix = ".lz4"

// Format is an encoding, optionally wrapped in an LZ4 frame.
type Format struct {
	Encoding Encoding
	LZ4      bool
}

// String returns the format name as accepted by ParseFormat, e.g. "yaml.lz4".
func (f Format) String() string {
	if f.LZ4 {
		return string(f.Encoding) + lz4Suffix
	}

	return string(f.Encoding)
}

// ParseFormat resolves names such as "json", "yml" or "toml.lz4".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var f Format

	if base, ok := strings.CutSuffix(name, lz4Suffix); ok {
		f.LZ4 = true
		name = base
	}

	switch name {
	case "json":
		f.Encoding = EncodingJSON
	case "yaml", "yml":
		f.Encoding = EncodingYAML
	case "toml":
		f.Encoding = EncodingTOML
	default:
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return f, nil
}

// FormatFromPath derives the format from a file name: ".json", ".yaml",
// ".yml" or ".toml", optionally followed by ".lz4".
func FormatFromPath(path string) (Format, error) {
	if path == StdinPath {
		return Format{Encoding: EncodingJSON}, nil
	}

	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, lz4Suffix)
	name = strings.TrimSuffix(name, lz4Suffix)

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return Format{}, fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}

	f, err := ParseFormat(ext)
	if err != nil {
		return Format{}, fmt.Errorf("%s: %w", path, err)
	}

	f.LZ4 = compressed

	return f, nil
}

// Decode reads a snapshot from r without validating it. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	if format.LZ4 {
		r = lz4.NewReader(r)
	}

	var snap Snapshot

	switch format.Encoding {
	case EncodingJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()

		err := dec.Decode(&snap)
		if err != nil {
			return nil, fmt.Errorf("decode json snapshot: %w", err)
		}
	case EncodingYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		err := dec.Decode(&snap)
		if err != nil {
			return nil, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	case EncodingTOML:
		md, err := toml.NewDecoder(r).Decode(&snap)
		if err != nil {
			return nil, fmt.Errorf("decode toml snapshot: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml snapshot: unknown field %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format.Encoding)
	}

	return &snap, nil
}

// Encode writes v to w in the given format. It is used for snapshots as well
// as for exported visualizations.
func Encode(w io.Writer, v any, format Format) error {
	if !format.LZ4 {
		return encodePlain(w, v, format.Encoding)
	}

	zw := lz4.NewWriter(w)

	err := encodePlain(zw, v, format.Encoding)
	if err != nil {
		return err
	}

	err = zw.Close()
	if err != nil {
		return fmt.Errorf("close lz4 frame: %w", err)
	}

	return nil
}

func encodePlain(w io.Writer, v any, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")

		err := e.Encode(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case EncodingYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)

		err := e.Encode(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		err = e.Close()
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case EncodingTOML:
		err := toml.NewEncoder(w).Encode(v)
		if err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, enc)
	}

	return nil
}
