package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	mdwlog "github.com/msto63/strvec/foundation/core/log"
	"github.com/msto63/strvec/foundation/utils/stringx"
	"github.com/msto63/strvec/internal/coerce"
	"github.com/msto63/strvec/internal/render"
	"github.com/msto63/strvec/pkg/core/config"
	"github.com/msto63/strvec/pkg/core/logging"
)

// app holds the state of one invocation
type app struct {
	cfgFile  string
	verbose  bool
	output   string
	input    string
	delim    string
	naString string

	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   *mdwlog.Logger
	renderer *render.Renderer
	doc      *coerce.Document
	strict   *stringx.StrictWarner
	stats    stringx.Stats
}

// NewRootCmd builds the command tree writing to stdout and stderr
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "strvec",
		Short: "strvec - Vektorisierte String-Operationen",
		Long: `strvec wendet String-Operationen elementweise auf ganze Vektoren an.

Kürzere Vektoren werden zyklisch wiederholt, fehlende Werte (NA)
werden weitergereicht, leere Strings bleiben leere Strings.

Befehle:
  dup      - Strings vervielfachen
  join     - Vektoren elementweise verketten
  flatten  - Vektor zu einem String zusammenfassen
  length   - Byte- und Zeichenlängen
  compare  - Vektoren vergleichen
  sort     - Vektor sortieren`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config-Datei (default: $STRVEC_CONFIG oder ./configs/config.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output")
	flags.StringVarP(&a.output, "output", "o", "", "Ausgabeformat (text, json, yaml)")
	flags.StringVarP(&a.input, "input", "i", "", "Eingabedokument mit benannten Vektoren (.yaml, .json, .toml)")
	flags.StringVarP(&a.delim, "delim", "d", ",", "Trennzeichen für Vektoren in einem Argument")

	rootCmd.AddCommand(
		newDupCmd(a),
		newJoinCmd(a),
		newFlattenCmd(a),
		newLengthCmd(a),
		newCompareCmd(a),
		newSortCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the CLI with the process arguments
func Execute() error {
	rootCmd := NewRootCmd(os.Stdout, os.Stderr)
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// ExitCode maps an error to the process exit status: 2 for warnings
// turned into errors, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		return 2
	}
	return 1
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.output != "" {
		a.cfg.Output.Format = a.output
	}
	format, err := render.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	if a.verbose {
		a.cfg.General.LogLevel = "debug"
	}
	a.naString = a.cfg.Output.NAString

	a.logger = logging.FromConfig(a.cfg, a.stderr).WithField("command", cmd.Name())
	a.renderer = render.New(render.Options{
		Format:   format,
		Color:    a.cfg.ColorEnabled(),
		NAString: a.naString,
	})

	a.strict = stringx.NewStrictWarner(stringx.WarnerFunc(func(w stringx.Warning) {
		a.renderer.Warning(a.stderr, w.String())
		stringx.LogWarner(a.logger).Warn(w)
	}))

	if a.input != "" {
		a.doc, err = coerce.LoadDocument(a.input, a.cfg.Input.Encoding, coerce.WithNAString(a.naString))
		if err != nil {
			return err
		}
		a.logger.Debug("input document loaded", mdwlog.Fields{
			"path":    a.doc.Path(),
			"vectors": a.doc.Names(),
		})
	}
	return nil
}

// opts returns the options for one vector operation
func (a *app) opts() []stringx.Option {
	return []stringx.Option{
		stringx.WithMaxBufferBytes(a.cfg.Engine.MaxBufferBytes),
		stringx.WithWarner(a.strict),
		stringx.WithStats(&a.stats),
	}
}

// run times an operation and applies the strict warning policy
func (a *app) run(operation string, fn func() error) error {
	timer := a.logger.StartTimer(operation)
	if err := fn(); err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.
		WithField("buffer_bytes", a.stats.BufferBytes).
		WithField("bytes_copied", a.stats.BytesCopied).
		Stop()

	if a.cfg.Engine.StrictWarnings {
		return a.strict.Err()
	}
	return nil
}

// stringSeq returns a vector from the input document when name is set,
// otherwise from the arguments.
func (a *app) stringSeq(args []string, name string) (stringx.StringSeq, error) {
	if name == "" {
		return coerce.ParseStrings(args, a.naString), nil
	}
	if err := a.requireDocument(name); err != nil {
		return nil, err
	}
	return a.doc.Strings(name)
}

// intSeq returns a count vector from the input document or the arguments
func (a *app) intSeq(args []string, name string) (stringx.IntSeq, error) {
	if name == "" {
		return coerce.ParseInts(args, a.naString)
	}
	if err := a.requireDocument(name); err != nil {
		return nil, err
	}
	return a.doc.Ints(name)
}

// splitSeq parses one argument holding a delimited vector. The empty
// argument is the empty vector.
func (a *app) splitSeq(arg string) stringx.StringSeq {
	if arg == "" {
		return stringx.StringSeq{}
	}
	return coerce.ParseStrings(splitDelim(arg, a.delim), a.naString)
}

func (a *app) requireDocument(name string) error {
	if a.doc == nil {
		return mdwerror.New(fmt.Sprintf("vector %q requested but no input document given (--input)", name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.input")
	}
	return nil
}

func printError(w io.Writer, err error) {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		fmt.Fprintf(w, "Fehler: %s [%s]\n", err, mdwErr.Code())
		return
	}
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
