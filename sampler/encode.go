package sampler

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/lina/core"
)

// Encode writes r to w as toml, yaml or json.
func Encode(w io.Writer, r *Report, format string) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("%q: %w", format, core.ErrUnknownFormat)
	}
}

// Decode reads a report previously written by Encode.
func Decode(rd io.Reader, format string) (*Report, error) {
	r := &Report{}
	var err error
	switch format {
	case "toml":
		err = toml.NewDecoder(rd).Decode(r)
	case "yaml":
		err = yaml.NewDecoder(rd).Decode(r)
	case "json":
		err = json.NewDecoder(rd).Decode(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, core.ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
