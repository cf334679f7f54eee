package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// profile is a named flag preset. Fields are pointers so absent keys leave
// the flag defaults untouched.
type profile struct {
	All     *bool   `yaml:"all"`
	Lower   *bool   `yaml:"use_lower"`
	Upper   *bool   `yaml:"use_upper"`
	Digits  *bool   `yaml:"use_digits"`
	Symbols *bool   `yaml:"use_symbols"`
	Chars   *string `yaml:"chars"`
	Length  *int    `yaml:"length"`
	Count   *int    `yaml:"count"`
	Hash    *bool   `yaml:"hash"`
}

func defaultProfilesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gopassgen", "profiles.yaml"), nil
}

// applyProfile overlays the named preset onto flag values. Flags explicitly
// set on the command line win over profile values.
func applyProfile(cmd *cobra.Command, name, path string) error {
	if path == "" {
		p, err := defaultProfilesPath()
		if err != nil {
			return fmt.Errorf("cannot locate profiles file: %v", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read profiles file '%s': %v", path, err)
	}

	var profiles map[string]profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("invalid profiles file '%s': %v", path, err)
	}

	p, ok := profiles[name]
	if !ok {
		return fmt.Errorf("profile '%s' not found in %s", name, path)
	}

	flags := cmd.Flags()
	setBool := func(flag string, dst *bool, v *bool) {
		if v != nil && !flags.Changed(flag) {
			*dst = *v
		}
	}
	setInt := func(flag string, dst *int, v *int) {
		if v != nil && !flags.Changed(flag) {
			*dst = *v
		}
	}
	setString := func(flag string, dst *string, v *string) {
		if v != nil && !flags.Changed(flag) {
			*dst = *v
		}
	}

	setBool("all", &useAll, p.All)
	setBool("use-lower", &useLower, p.Lower)
	setBool("use-upper", &useUpper, p.Upper)
	setBool("use-digits", &useDigits, p.Digits)
	setBool("use-symbols", &useSymbols, p.Symbols)
	setString("chars", &custom, p.Chars)
	setInt("length", &length, p.Length)
	setInt("count", &count, p.Count)
	setBool("hash", &emitHash, p.Hash)

	log.Debugf("applied profile %s from %s", name, path)

	return nil
}
