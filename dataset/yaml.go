package dataset

import (
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

/*
ReadYAMLAttributes takes a slice of bytes with attribute metadata in YAML and
returns the attributes parsed from it in document order.

The YAML is expected to be an object with an attributes property holding a
list of objects, each with a name and an optional values mapping from
abbreviation to description:

	attributes:
	  - name: class
	    values: {e: edible, p: poisonous}
	  - name: cap-shape
	    values: {b: bell, c: conical}
*/
func ReadYAMLAttributes(md []byte) ([]Attribute, error) {
	metadata := struct {
		Attributes []Attribute `yaml:"attributes"`
	}{}
	if err := yaml.Unmarshal(md, &metadata); err != nil {
		return nil, errors.Wrap(err, "parsing yml attributes")
	}
	if metadata.Attributes == nil {
		return nil, errors.New("metadata file has no attribute information")
	}
	for i, a := range metadata.Attributes {
		if a.Name == "" {
			return nil, errors.NewValidationError("attributes", "attribute has no name", i)
		}
	}
	return metadata.Attributes, nil
}

// WriteYAMLAttributes renders attrs in the format ReadYAMLAttributes reads.
func WriteYAMLAttributes(attrs []Attribute) ([]byte, error) {
	metadata := struct {
		Attributes []Attribute `yaml:"attributes"`
	}{Attributes: attrs}
	out, err := yaml.Marshal(&metadata)
	if err != nil {
		return nil, errors.Wrap(err, "encoding yml attributes")
	}
	return out, nil
}

// ReadYAMLAttributesFromFile reads the file at path with ReadYAMLAttributes.
func ReadYAMLAttributesFromFile(path string) ([]Attribute, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading attributes yml file %s", path)
	}
	attrs, err := ReadYAMLAttributes(md)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing attributes yml file %s", path)
	}
	return attrs, nil
}

// LoadAttributes reads attribute metadata from path, choosing the YAML
// reader for .yml and .yaml files and the name: description=abbreviation
// reader otherwise.
func LoadAttributes(path string) ([]Attribute, error) {
	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		return ReadYAMLAttributesFromFile(path)
	}
	return LoadAttributeNamesAndValues(path)
}
