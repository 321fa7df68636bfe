package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/log"
)

func usage(fs *pflag.FlagSet, w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: hofa [flags] <command> [args]")
	fmt.Fprintln(w, "\ncommands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(w, "\nflags:")
	fmt.Fprint(w, fs.FlagUsages())
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage(fs, stderr)
		return 2
	}
	name, cmdArgs := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", name)
		usage(fs, stderr)
		return 2
	}
	if len(cmdArgs) < cmd.minArgs || (cmd.maxArgs >= 0 && len(cmdArgs) > cmd.maxArgs) {
		fmt.Fprintf(stderr, "%s %s\n", name, cmd.usage)
		return 2
	}

	cfg, err := loadConfig(viper.GetViper(), fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := log.Init(cfg.Debug); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer log.Sync()

	ctx := bCtx.WithValue(bCtx.Background(), "command", name)
	a, err := newApp(ctx, cfg, fs, cmd.needs)
	if err != nil {
		ctx.WithError(err).Error("newApp failed")
		fmt.Fprintln(stderr, err)
		return 1
	}

	res, err := cmd.run(ctx, a, cmdArgs)
	if err != nil {
		ctx.WithError(err).Error("command failed")
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := printResult(stdout, res); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// printResult writes strings as is and anything else as indented json.
func printResult(w io.Writer, res interface{}) error {
	if s, ok := res.(string); ok {
		_, err := fmt.Fprintln(w, strings.TrimSpace(s))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
