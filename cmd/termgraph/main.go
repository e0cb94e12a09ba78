package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/noriah/termgraph"
	"github.com/noriah/termgraph/graphic"
	"github.com/noriah/termgraph/input"
	"github.com/noriah/termgraph/input/execread"

	"github.com/integrii/flaggy"
	"golang.org/x/term"
)

// AppName is the app name
const AppName = "termgraph"

// AppDesc is the app description
const AppDesc = "Live terminal bar graph of numbers read one per line"

// AppSite is the app website
const AppSite = "https://github.com/noriah/termgraph"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	parser, done := doFlags(&cfg)
	if done {
		return
	}

	if err := cfg.validate(); err != nil {
		parser.ShowHelpWithMessage(err.Error())
		os.Exit(1)
	}

	if cfg.command == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		parser.ShowHelpWithMessage("nothing piped to stdin; pipe samples in or use --command")
		os.Exit(1)
	}

	chk(run(&cfg), "failed to run termgraph")
}

func run(cfg *config) error {
	var session input.Session = input.NewReaderSession(os.Stdin)
	if cfg.command != "" {
		cmdSession := execread.NewShellSession(cfg.command)
		// anything on stderr would be written over the graph
		cmdSession.DisconnectedStderr = true
		session = cmdSession
	}

	surface, err := graphic.InitBackend(cfg.backend)
	if err != nil {
		return err
	}
	defer surface.Close()

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ctx = surface.Start(ctx)

	return termgraph.Run(ctx, &termgraph.Config{
		Title:   cfg.title,
		Scale:   cfg.scaleMode(),
		Session: session,
		Surface: surface,
	})
}

// Flag help for the scale bounds. flaggy prints the default after each, and the
// default of --upper is NaN until one is given.
const (
	lowerHelp = "lower bound of the fixed scale"
	upperHelp = "upper bound of the fixed scale; required with --fixed, NaN means not given"
)

func newParser(cfg *config) (*flaggy.Parser, *flaggy.Subcommand) {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.AdditionalHelpAppend = "\nsamples are read one per line; lines that are not numbers are skipped." +
		"\nq, Esc or Ctrl-C quits."
	parser.Version = version

	listBackendsCmd := &flaggy.Subcommand{
		Name:        "list-backends",
		ShortName:   "lb",
		Description: "list all supported terminal backends",
	}

	parser.AttachSubcommand(listBackendsCmd, 1)

	parser.String(&cfg.title, "t", "title", "title drawn at the top of the graph")
	parser.Bool(&cfg.fixed, "f", "fixed", "use a fixed scale (requires --upper)")
	parser.Bool(&cfg.variable, "v", "variable", "scale to the visible data (default)")
	parser.Float64(&cfg.lower, "l", "lower", lowerHelp)
	parser.Float64(&cfg.upper, "u", "upper", upperHelp)
	parser.String(&cfg.backend, "b", "backend", "terminal backend (see list-backends)")
	parser.String(&cfg.command, "c", "command", "read samples from a shell command instead of stdin")

	return parser, listBackendsCmd
}

func doFlags(cfg *config) (*flaggy.Parser, bool) {

	parser, listBackendsCmd := newParser(cfg)

	chk(parser.Parse(), "failed to parse arguments")

	if listBackendsCmd.Used {
		for _, backend := range graphic.Backends {
			star := ' '
			if backend.Name == graphic.DefaultBackend {
				star = '*'
			}

			fmt.Printf("- %s %c\n", backend.Name, star)
		}

		return parser, true
	}

	return parser, false
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
