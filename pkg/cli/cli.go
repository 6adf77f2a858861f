package cli

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/ordinaltree/pkg/config"
)

// Context is bound to the Run method of every command.
type Context struct {
	Config *config.Config
	Logger *slog.Logger
	Out    io.Writer
}

// CLI is the command tree of ordinaltree.
type CLI struct {
	Config   string `help:"Configuration file (yaml, json or toml)" type:"path"`
	LogLevel string `help:"Override the configured log level (debug, info, warn, error)"`

	Print    PrintCmd    `cmd:"" help:"Print the tree built from word lists"`
	Words    WordsCmd    `cmd:"" help:"Write the words in tree order"`
	Complete CompleteCmd `cmd:"" help:"List the words starting with a prefix"`
	Stats    StatsCmd    `cmd:"" help:"Print the size and height of the tree"`
}

// Execute parses args and runs the selected command.
// the command output goes to stdout, logs and usage go to stderr
func Execute(args []string, stdout io.Writer, stderr io.Writer, options ...kong.Option) error {
	var cli CLI

	options = append([]kong.Option{
		kong.Name("ordinaltree"),
		kong.Description("Build character tries ordered by priority patterns."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx, err := cli.newContext(stdout, stderr)
	if err != nil {
		return err
	}
	return kctx.Run(ctx)
}

func (cli *CLI) newContext(stdout io.Writer, stderr io.Writer) (*Context, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}

	logger, err := cfg.Logger(stderr)
	if err != nil {
		return nil, err
	}
	return &Context{Config: cfg, Logger: logger, Out: stdout}, nil
}
