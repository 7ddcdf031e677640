package options

import (
	"os"

	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads Options from a YAML config file, layering them on top of
// the documented defaults: any field absent from the file keeps its default
// value. The caller typically applies further OptionFunc overrides on top,
// e.g. command-line flags taking precedence over the file.
//
//	opts, err := options.LoadFile("kivo.yaml")
//	opts = opts.Apply(options.WithReaderConcurrency(32))
func LoadFile(path string) (Options, error) {
	opts := NewDefaultOptions()

	contents, err := os.ReadFile(path)
	if err != nil {
		return Options{}, kivoerrors.NewStorageError(err, kivoerrors.ErrorCodeIO, "failed to read config file").
			WithPath(path)
	}

	if err := yaml.Unmarshal(contents, &opts); err != nil {
		return Options{}, kivoerrors.NewConfigurationValidationError("*", "file does not parse as YAML: "+err.Error())
	}

	return opts, nil
}
