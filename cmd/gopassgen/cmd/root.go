package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	goPassGen "github.com/MrEthical07/goPassGen"
	"github.com/MrEthical07/goPassGen/charset"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Policy minimum, stricter than the engine's structural check.
const minLength = 6

var (
	useAll     bool
	useLower   bool
	useUpper   bool
	useDigits  bool
	useSymbols bool
	custom     string
	count      int
	length     int
	outputPath string

	emitHash     bool
	auditLogPath string
	profileName  string
	profilesPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "gopassgen",
	Short: "Constrained random password generator",
	Long: `gopassgen generates random passwords from selected character categories.

Every selected category (and the custom set, if given) is guaranteed at
least one character in every password. When no category is selected, all
four default categories are used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&useAll, "all", "a", false, "include all default character categories: lowercase, uppercase, digits, and symbols")
	f.StringVarP(&custom, "chars", "c", "", "additional set of characters to include in the password")
	f.IntVarP(&count, "count", "C", 1, "number of passwords to generate")
	f.IntVarP(&length, "length", "L", 8, "total length of each password")
	f.BoolVarP(&useLower, "use-lower", "l", false, "include lowercase letters (a-z)")
	f.BoolVarP(&useUpper, "use-upper", "u", false, "include uppercase letters (A-Z)")
	f.BoolVarP(&useDigits, "use-digits", "d", false, "include digits (0-9)")
	f.BoolVarP(&useSymbols, "use-symbols", "s", false, "include symbols or special characters (e.g. !@#)")
	f.StringVarP(&outputPath, "output", "o", "", "output file path; stdout if not set")
	f.BoolVar(&emitHash, "hash", false, "append an argon2id digest to each output line")
	f.StringVar(&auditLogPath, "audit-log", "", "append JSON audit events for each run to this file")
	f.StringVar(&profileName, "profile", "", "apply a named preset from the profiles file")
	f.StringVar(&profilesPath, "profiles-file", "", "profiles file (default: <user config dir>/gopassgen/profiles.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func run(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if profileName != "" {
		if err := applyProfile(cmd, profileName, profilesPath); err != nil {
			return err
		}
	}

	if length < minLength {
		return fmt.Errorf("the password length must be at least %d", minLength)
	}

	if custom != "" {
		if err := charset.ValidateCustom(custom); err != nil {
			return err
		}
	}

	// Use all categories if --all is given, or if no category and no
	// custom set is explicitly chosen.
	anySet := useLower || useUpper || useDigits || useSymbols || custom != ""
	all := useAll || !anySet

	out, finish, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	builder := goPassGen.New().
		WithCharset(charset.Config{
			Lower:   useLower || all,
			Upper:   useUpper || all,
			Digits:  useDigits || all,
			Symbols: useSymbols || all,
			Custom:  custom,
		}).
		WithLength(length).
		WithCount(count).
		WithHashEnabled(emitHash).
		WithOutput(out)

	var closeAudit func()
	if auditLogPath != "" {
		auditFile, err := os.OpenFile(auditLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open audit log '%s': %v", auditLogPath, err)
		}
		closeAudit = func() { _ = auditFile.Close() }
		builder = builder.
			WithAuditEnabled(true).
			WithAuditSink(goPassGen.NewJSONWriterSink(auditFile))
	}

	engine, err := builder.Build()
	if err != nil {
		if closeAudit != nil {
			closeAudit()
		}
		return err
	}

	genErr := engine.Generate(cmd.Context())
	engine.Close()
	if closeAudit != nil {
		closeAudit()
	}

	if genErr != nil {
		return outputError(genErr)
	}

	if err := finish(); err != nil {
		return outputError(fmt.Errorf("%w: %v", goPassGen.ErrOutputWrite, err))
	}

	log.Debugf("generated %d passwords of length %d", count, length)

	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to write to file '%s': %v", path, err)
	}

	bw := bufio.NewWriter(file)
	finish := func() error {
		if err := bw.Flush(); err != nil {
			_ = file.Close()
			return err
		}
		return file.Close()
	}

	log.Debugf("writing to file %s", path)

	return bw, finish, nil
}

func outputError(err error) error {
	if !errors.Is(err, goPassGen.ErrOutputWrite) {
		return err
	}
	if outputPath != "" {
		return fmt.Errorf("failed to write to file '%s': %v", outputPath, err)
	}
	return fmt.Errorf("an output error occurred: %v", err)
}
