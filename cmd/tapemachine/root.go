package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/comalice/tapemachine"
	"github.com/comalice/tapemachine/internal/config"
)

// rootOptions carries state shared by every subcommand of one invocation.
type rootOptions struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

// newRootCmd builds a fresh command tree. Each call has its own viper
// instance so tests can execute commands side by side.
func newRootCmd() *cobra.Command {
	o := &rootOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:   "tapemachine",
		Short: "Turing machine description interpreter",
		Long: `tapemachine parses a tagged Turing machine description, builds the
automaton it declares and runs every tape listed in it.

Settings are read from $HOME/.tapemachine.yaml, TAPEMACHINE_* environment
variables and flags, in increasing order of precedence.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.init(cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.tapemachine.yaml)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	bindFlags(o.v, pf, "verbose")

	cmd.AddCommand(
		newRunCmd(o),
		newCheckCmd(o),
		newDotCmd(o),
		newVersionCmd(),
	)
	return cmd
}

// init loads configuration and sets up logging on stderr.
func (o *rootOptions) init(stderr io.Writer) error {
	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	// Using TextHandler for CLI friendliness
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.logger)

	if used := o.v.ConfigFileUsed(); used != "" {
		o.logger.Debug("using config file", "file", used)
	}
	return nil
}

// loadProgram reads and parses the description at path.
func (o *rootOptions) loadProgram(path string) (*tapemachine.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	prog, err := tapemachine.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	o.logger.Debug("description parsed",
		"path", path,
		"states", len(prog.Automaton.States),
		"transitions", len(prog.Automaton.Transitions),
		"tapes", len(prog.Tapes),
	)
	return prog, nil
}

// bindFlags binds flags to viper keys; dashes become underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		key := strings.ReplaceAll(name, "-", "_")
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// openOutput returns stdout, or the file at path when set.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
