package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/luhn/internal/checker"
	"github.com/katalvlaran/luhn/internal/cliconfig"
)

const longHelp = `Validate numbers and compute Luhn check digits.

Schemes:
  decimal   digits only: card numbers, IMEI, SIN
  alphanum  digits and A-Z, letters folded mod 10
  base36    digits and A-Z, letters expanded to two digits (ISIN rule)

Inputs come from the arguments, or one per line on stdin.
Configuration is read from $HOME/.luhn/config.toml, then LUHN_* variables,
then flags.`

var exampleUsage = strings.TrimSpace(`
  luhn validate 4111111111111111
  luhn validate --skip " -" "4111 1111 1111 1111"
  luhn checksum --scheme base36 --append US594918104
  cat isins.txt | luhn validate --scheme base36
`)

// errFailed marks a run where at least one input was rejected.
var errFailed = errors.New("some inputs failed")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
	stderr  io.Writer
	checker *checker.Checker
}

func newApp(stderr io.Writer) *app {
	a := &app{cfg: cliconfig.DefaultConfig(), stderr: stderr}
	a.log = cliconfig.NewLogger(stderr, a.cfg.Level())

	return a
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "luhn",
		Short:             "Validate numbers and compute Luhn check digits",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.luhn/config.toml)")
	pf.StringVar(&a.cfg.Scheme, "scheme", a.cfg.Scheme, "one of "+strings.Join(checker.Schemes, ", "))
	pf.StringVar(&a.cfg.Skip, "skip", a.cfg.Skip, `bytes to ignore anywhere in the input, e.g. " -"`)
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "trace, debug, info, warn or error")

	root.AddCommand(a.validateCmd(), a.checksumCmd())

	return root
}

// setup loads the config file, then env, then applies explicitly set flags,
// and builds the checker every subcommand uses.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
	} else if a.cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", a.cfgPath)
	}

	cliconfig.ApplyEnvConfig(&a.cfg, changed)

	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = a.log.Level(a.cfg.Level())

	c, err := a.cfg.Checker(a.log)
	if err != nil {
		return err
	}
	a.checker = c

	a.log.Debug().
		Str("scheme", a.cfg.Scheme).
		Str("skip", fmt.Sprintf("%q", a.cfg.Skip)).
		Bool("append", a.cfg.Append).
		Msg("configuration")

	return nil
}

func (a *app) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in, err := checker.ReadInputs(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if len(in) == 0 {
		return nil, errors.New("no input: pass arguments or pipe lines on stdin")
	}

	return in, nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [NUMBER...]",
		Short: "Check that each number ends with a correct check digit",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(cmd, args)
			if err != nil {
				return err
			}

			results, sum := checker.Run(inputs, a.checker.Validate)
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Valid {
					fmt.Fprintf(out, "%s\tvalid\n", r.Input)
				} else {
					fmt.Fprintf(out, "%s\tinvalid\t%v\n", r.Input, r.Err)
				}
			}

			a.log.Info().
				Str("scheme", a.checker.Scheme().String()).
				Int("total", sum.Total).
				Int("failed", sum.Failed).
				Msg("validate")
			if sum.Failed > 0 {
				return fmt.Errorf("%w: %d of %d invalid", errFailed, sum.Failed, sum.Total)
			}

			return nil
		},
	}
}

func (a *app) checksumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum [BODY...]",
		Short: "Compute the check digit for each body",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(cmd, args)
			if err != nil {
				return err
			}

			results, sum := checker.Run(inputs, a.checker.Checksum)
			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case !r.Valid:
					fmt.Fprintf(out, "%s\terror\t%v\n", r.Input, r.Err)
				case a.cfg.Append:
					fmt.Fprintf(out, "%s%c\n", r.Input, r.Digit)
				default:
					fmt.Fprintf(out, "%s\t%c\n", r.Input, r.Digit)
				}
			}

			a.log.Info().
				Str("scheme", a.checker.Scheme().String()).
				Int("total", sum.Total).
				Int("failed", sum.Failed).
				Msg("checksum")
			if sum.Failed > 0 {
				return fmt.Errorf("%w: no check digit for %d of %d", errFailed, sum.Failed, sum.Total)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&a.cfg.Append, "append", a.cfg.Append, "print the completed number instead of the digit")

	return cmd
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			a.log.Error().Err(err).Msg("luhn")
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
