// lexkit is a demo driver for the lexkit packages: it tokenizes
// arithmetic files with the reference mathlex lexer and dumps positioned
// attributes out of HTML documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/adhocteam/lexkit/internal/command"
	"github.com/adhocteam/lexkit/internal/version"
)

type subcmd struct {
	name  string
	setup func(*flag.FlagSet)
	run   func(*flag.FlagSet) error
}

var subcommands = []subcmd{
	{
		name:  "lex",
		setup: func(fs *flag.FlagSet) {},
		run: func(fs *flag.FlagSet) error {
			if fs.NArg() < 1 {
				return fmt.Errorf("missing file argument")
			}
			return command.Lex(os.Stdout, fs.Args())
		},
	},
	{
		name:  "tags",
		setup: func(fs *flag.FlagSet) {},
		run: func(fs *flag.FlagSet) error {
			if fs.NArg() < 1 {
				return fmt.Errorf("missing file argument")
			}
			return command.Tags(os.Stdout, fs.Arg(0))
		},
	},
	{
		name: "watch",
		setup: func(fs *flag.FlagSet) {
			fs.String("r", ".", "Watch files under `root` directory")
		},
		run: func(fs *flag.FlagSet) error {
			root := fs.Lookup("r").Value.String()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return command.Watch(ctx, os.Stdout, root)
		},
	},
	{
		name:  "version",
		setup: func(fs *flag.FlagSet) {},
		run: func(fs *flag.FlagSet) error {
			fmt.Println(version.Version())
			return nil
		},
	},
}

func main() {
	flag.Usage = printUsage

	flag.Parse()

	if len(flag.Args()) < 1 {
		printUsage()
		os.Exit(1)
	}

	cmdName := flag.Arg(0)
	cmd := findCommand(cmdName)
	if cmd == nil {
		fmt.Printf("Unknown command: %s\n", cmdName)
		printUsage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(cmdName, flag.ExitOnError)
	cmd.setup(fs)
	fs.Usage = func() {
		fmt.Printf("Usage: lexkit %s [flags]\n", cmdName)
		fs.PrintDefaults()
	}

	err := fs.Parse(flag.Args()[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = cmd.run(fs)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func findCommand(name string) *subcmd {
	for i := range subcommands {
		if subcommands[i].name == name {
			return &subcommands[i]
		}
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(flag.CommandLine.Output(), "Usage: lexkit <command>")
	fmt.Fprintln(flag.CommandLine.Output(), "Commands:")
	for _, cmd := range subcommands {
		fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", cmd.name)
	}
}
