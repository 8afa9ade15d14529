package dataset

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// DefaultNameSeparator separates an attribute name from its value list in an
// attribute file.
const DefaultNameSeparator = ":"

// Attribute describes one record position: its name and, when known, the
// mapping from value abbreviation to description. A description listed
// without an abbreviation is stored under the empty key.
type Attribute struct {
	Name   string            `yaml:"name"`
	Values map[string]string `yaml:"values,omitempty"`
}

// Describe returns the description of the abbreviated value, or the value
// itself when the attribute has no description for it.
func (a Attribute) Describe(value string) string {
	if d, ok := a.Values[value]; ok {
		return d
	}
	return value
}

// AttributeNames returns the names of attrs in order.
func AttributeNames(attrs []Attribute) []string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
	}
	return names
}

/*
ReadAttributeNamesAndValues parses attribute metadata from r. Each non-blank
line describes one attribute:

	name: description=abbreviation[, description=abbreviation]*

for example

	cap-shape: bell=b, conical=c, convex=x, flat=f, knobbed=k, sunken=s

A line without a separator declares an attribute with no known values.
*/
func ReadAttributeNamesAndValues(r io.Reader) ([]Attribute, error) {
	var attrs []Attribute
	err := scanLines(r, func(line string) {
		attrs = append(attrs, parseAttributeLine(line))
	})
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

func parseAttributeLine(line string) Attribute {
	parts := strings.Split(line, DefaultNameSeparator)
	attr := Attribute{Name: parts[0]}
	if len(parts) < 2 {
		return attr
	}
	attr.Values = make(map[string]string)
	for _, pair := range strings.Split(strings.TrimSpace(parts[1]), ",") {
		da := strings.Split(strings.TrimSpace(pair), "=")
		if len(da) < 2 {
			attr.Values[""] = da[0]
			continue
		}
		attr.Values[da[1]] = da[0]
	}
	return attr
}

// ReadAttributeNames returns the attribute name of every non-blank line of
// r: the text before the first occurrence of separator, or the whole line.
func ReadAttributeNames(r io.Reader, separator string) ([]string, error) {
	if separator == "" {
		separator = DefaultNameSeparator
	}
	var names []string
	err := scanLines(r, func(line string) {
		names = append(names, strings.SplitN(line, separator, 2)[0])
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func scanLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	return errors.Wrap(scanner.Err(), "scanning attribute file")
}

// LoadAttributeNames reads attribute names from the file at path.
func LoadAttributeNames(path, separator string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening attribute file %s", path)
	}
	defer f.Close()
	return ReadAttributeNames(f, separator)
}

// LoadAttributeValues reads the value descriptions of every attribute in the
// file at path. Attributes without values yield an empty map.
func LoadAttributeValues(path string) ([]map[string]string, error) {
	attrs, err := LoadAttributeNamesAndValues(path)
	if err != nil {
		return nil, err
	}
	values := make([]map[string]string, len(attrs))
	for i, a := range attrs {
		if a.Values == nil {
			values[i] = map[string]string{}
			continue
		}
		values[i] = a.Values
	}
	return values, nil
}

// LoadAttributeNamesAndValues reads attribute metadata from the file at path.
func LoadAttributeNamesAndValues(path string) ([]Attribute, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening attribute file %s", path)
	}
	defer f.Close()
	attrs, err := ReadAttributeNamesAndValues(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing attribute file %s", path)
	}
	return attrs, nil
}
