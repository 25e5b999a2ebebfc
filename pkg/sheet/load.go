package sheet

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// LoadFile decodes a TOML file on top of base. Keys absent from the file keep
// the values from base; unknown keys are rejected.
//
//	[photo]
//	width = 413
//	height = 531
//	border = 20
//
//	[grid]
//	rows = 3
//	cols = 2
//	spacing = "centered"
//
//	[guideline]
//	style = "dotted"
//	color = "grey"
func LoadFile(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return base, errors.Wrap(errors.ErrCodeInvalidInput, err, "config file %s", path)
		}
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, checkUndecoded(path, md)
}

// Decode parses TOML text on top of base.
func Decode(data string, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return cfg, checkUndecoded("config", md)
}

func checkUndecoded(source string, md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", source, strings.Join(keys, ", "))
}
