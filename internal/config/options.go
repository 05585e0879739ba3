package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/gsjson-go/pkg/gsjson"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/transform"
)

// optionsFile mirrors gsjson.Options in YAML. List-valued settings also
// accept a single scalar.
type optionsFile struct {
	Vertical      *bool     `yaml:"vertical"`
	ListOnly      *bool     `yaml:"listOnly"`
	IncludeHeader *bool     `yaml:"includeHeader"`
	Hash          *string   `yaml:"hash"`
	PropertyMode  *string   `yaml:"propertyMode"`
	HeaderStart   yaml.Node `yaml:"headerStart"`
	HeaderSize    *int      `yaml:"headerSize"`
	IgnoreRow     yaml.Node `yaml:"ignoreRow"`
	IgnoreCol     yaml.Node `yaml:"ignoreCol"`
	Worksheet     yaml.Node `yaml:"worksheet"`
	AllWorksheets *bool     `yaml:"allWorksheets"`
}

// LoadOptions reads the YAML options file at path on top of base.
func LoadOptions(path string, base gsjson.Options) (gsjson.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer f.Close()

	var file optionsFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return base, fmt.Errorf("parse options file %s: %w", path, err)
	}
	return file.apply(base)
}

func (o optionsFile) apply(opts gsjson.Options) (gsjson.Options, error) {
	setBool(&opts.Vertical, o.Vertical)
	setBool(&opts.ListOnly, o.ListOnly)
	setBool(&opts.IncludeHeader, o.IncludeHeader)
	setBool(&opts.AllWorksheets, o.AllWorksheets)
	if o.Hash != nil {
		opts.Hash = *o.Hash
	}
	if o.PropertyMode != nil {
		mode, err := transform.ParsePropertyMode(*o.PropertyMode)
		if err != nil {
			return opts, err
		}
		opts.PropertyMode = mode
	}
	if o.HeaderSize != nil {
		opts.HeaderSize = *o.HeaderSize
	}

	if values, _, err := scalars(&o.HeaderStart); err != nil {
		return opts, fmt.Errorf("headerStart: %w", err)
	} else if len(values) > 0 {
		id, err := columnID(values[0])
		if err != nil {
			return opts, fmt.Errorf("headerStart: %w", err)
		}
		opts.HeaderStart = id
	}

	if values, _, err := scalars(&o.IgnoreRow); err != nil {
		return opts, fmt.Errorf("ignoreRow: %w", err)
	} else if values != nil {
		opts.IgnoreRow = nil
		for _, v := range values {
			row, err := rowNumber(v)
			if err != nil {
				return opts, fmt.Errorf("ignoreRow: %w", err)
			}
			opts.IgnoreRow = append(opts.IgnoreRow, row)
		}
	}

	if values, _, err := scalars(&o.IgnoreCol); err != nil {
		return opts, fmt.Errorf("ignoreCol: %w", err)
	} else if values != nil {
		opts.IgnoreCol = nil
		for _, v := range values {
			id, err := columnID(v)
			if err != nil {
				return opts, fmt.Errorf("ignoreCol: %w", err)
			}
			opts.IgnoreCol = append(opts.IgnoreCol, id)
		}
	}

	if values, isList, err := scalars(&o.Worksheet); err != nil {
		return opts, fmt.Errorf("worksheet: %w", err)
	} else if values != nil {
		opts.Worksheet = nil
		for _, v := range values {
			opts.Worksheet = append(opts.Worksheet, fmt.Sprint(v))
		}
		opts.MultipleWorksheets = isList
	}
	return opts, nil
}

// scalars decodes a scalar or a sequence of scalars. It returns nil for an
// unset node.
func scalars(node *yaml.Node) (values []interface{}, isList bool, err error) {
	switch node.Kind {
	case 0:
		return nil, false, nil
	case yaml.ScalarNode:
		var v interface{}
		if err := node.Decode(&v); err != nil {
			return nil, false, err
		}
		return []interface{}{v}, false, nil
	case yaml.SequenceNode:
		values = []interface{}{}
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, true, fmt.Errorf("%w: nested value at line %d", transform.ErrInvalidColumnType, item.Line)
			}
			var v interface{}
			if err := item.Decode(&v); err != nil {
				return nil, true, err
			}
			values = append(values, v)
		}
		return values, true, nil
	}
	return nil, false, fmt.Errorf("%w: unsupported value at line %d", transform.ErrInvalidColumnType, node.Line)
}

// columnID validates a column identifier and returns it in text form.
func columnID(v interface{}) (string, error) {
	if _, err := transform.ParseColumn(v); err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

func rowNumber(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid row number %v", v)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
