package main

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/pkg/log"
	"github.com/YuminosukeSato/simpledt/sklearn/tree"
)

type rootCmdConfig struct {
	verbose       bool
	logFormat     string
	dataInput     string
	attributes    string
	class         string
	filterMissing bool
	missing       string
	trace         int
}

func (c *rootCmdConfig) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug output, including the tree-building trace")
	flags.StringVar(&c.logFormat, "log-format", "console", "log output format: console or json")
	flags.StringVarP(&c.dataInput, "input", "i", "", "path to a comma-separated file of training instances (defaults to STDIN)")
	flags.StringVarP(&c.attributes, "attributes", "a", "", "path to an attribute file (name: description=abbreviation, ...) or a YML file with attribute metadata")
	flags.StringVarP(&c.class, "class", "c", "0", "index or attribute name of the class label")
	flags.BoolVar(&c.filterMissing, "filter-missing", false, "drop instances containing the missing value token")
	flags.StringVar(&c.missing, "missing", dataset.MissingValue, "token that marks a missing value")
	flags.IntVar(&c.trace, "trace", 0, "indentation level of the tree-building trace, 0 disables it")
}

func (c *rootCmdConfig) setupLogging(w io.Writer) error {
	level := log.LevelInfo
	if c.verbose || c.trace > 0 {
		level = log.LevelDebug
	}
	var pretty bool
	switch c.logFormat {
	case "console":
		pretty = true
	case "json":
	default:
		return errors.NewValidationError("log-format", "must be console or json", c.logFormat)
	}
	provider := log.NewZerologProvider(w, level)
	provider.SetOutput(w, pretty)
	log.SetProvider(provider)
	log.RouteWarnings()
	return nil
}

func (c *rootCmdConfig) logger() log.Logger {
	return log.GetLoggerWithName("cli")
}

// loadAttributes returns nil when no attribute file was given.
func (c *rootCmdConfig) loadAttributes() ([]dataset.Attribute, error) {
	if c.attributes == "" {
		return nil, nil
	}
	return dataset.LoadAttributes(c.attributes)
}

// classIndex resolves the class flag as an index or an attribute name.
func (c *rootCmdConfig) classIndex(attrs []dataset.Attribute) (int, error) {
	if idx, err := strconv.Atoi(c.class); err == nil {
		if idx < 0 {
			return 0, errors.NewValidationError("class", "must be non-negative", idx)
		}
		return idx, nil
	}
	for i, name := range dataset.AttributeNames(attrs) {
		if name == c.class {
			return i, nil
		}
	}
	return 0, errors.NewValidationError("class", "is neither an index nor a known attribute name", c.class)
}

func (c *rootCmdConfig) loadInstances(path string) ([]dataset.Record, error) {
	if path == "" {
		c.logger().Info("Reading instances from STDIN")
	}
	records, err := dataset.LoadInstances(path, c.filterMissing, c.missing)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("Instances loaded", log.SamplesKey, len(records), log.FeaturesKey, dataset.Width(records))
	return records, nil
}

// session bundles what every training command needs.
type session struct {
	attrs      []dataset.Attribute
	classIndex int
	training   []dataset.Record
}

func (c *rootCmdConfig) session() (*session, error) {
	attrs, err := c.loadAttributes()
	if err != nil {
		return nil, err
	}
	classIndex, err := c.classIndex(attrs)
	if err != nil {
		return nil, err
	}
	training, err := c.loadInstances(c.dataInput)
	if err != nil {
		return nil, err
	}
	if err := dataset.Validate(training, classIndex); err != nil {
		return nil, err
	}
	return &session{attrs: attrs, classIndex: classIndex, training: training}, nil
}

func (c *rootCmdConfig) treeOptions(classIndex int) []tree.Option {
	return []tree.Option{
		tree.WithClassIndex(classIndex),
		tree.WithTrace(c.trace),
		tree.WithLogger(log.GetLoggerWithName("tree")),
	}
}

func (s *session) fit(c *rootCmdConfig) (*tree.DecisionTreeClassifier, error) {
	clf := tree.NewDecisionTreeClassifier(c.treeOptions(s.classIndex)...)
	if err := clf.Fit(s.training); err != nil {
		return nil, err
	}
	return clf, nil
}
