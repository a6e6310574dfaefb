package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/five82/rove/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "markup" {
		return runMarkup(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("rove", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "override config path (optional)")
	prefsPath := fs.String("prefs", "", "override prefs path (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(stderr, "rove: stdout is not a terminal; use \"rove markup\" for headless output")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(stderr, "rove: %v\n", err)
		return 1
	}
	return 0
}

func runMarkup(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rove markup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "HTML file to read (default stdin)")
	container := fs.String("container", "", "tablist container id (default first role=tablist)")
	active := fs.String("active", "", "initially active tab id (default first tab)")
	keys := fs.String("keys", "", "comma-separated KeyboardEvent.key values to replay")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(stderr, "rove: open input: %v\n", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	opts := app.MarkupOptions{ContainerID: *container, Active: *active}
	if *keys != "" {
		opts.Keys = strings.Split(*keys, ",")
	}
	res, err := app.RunMarkup(r, stdout, opts)
	if err != nil {
		fmt.Fprintf(stderr, "rove: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "active=%s handled=%d\n", res.Active, res.Handled)
	return 0
}
