package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"charm.land/lipgloss/v2"

	editor "github.com/ionut-t/gokilo/adapter-terminal"
	"github.com/ionut-t/gokilo/config"
	"github.com/ionut-t/gokilo/core"
)

const version = "0.0.1"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gokilo [-config path] [-version] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("gokilo", version)
		return
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		lipgloss.Fprintln(os.Stderr, errorStyle.Render("gokilo: "+err.Error()))
		os.Exit(1)
	}
}

func run(configPath, file string) error {
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	options := []core.EditorOption{}
	if cb := editor.NewClipboard(); cb != nil {
		options = append(options, core.WithClipboard(cb))
	}
	textEditor := core.New(cfg.EditorOptions(), options...)

	terminal := editor.NewTerminal(os.Stdin, os.Stdout)
	if err := terminal.EnableRawMode(); err != nil {
		return err
	}
	defer terminal.Restore()

	rows, cols, err := terminal.TextArea()
	if err != nil {
		return err
	}
	textEditor.SetSize(rows, cols)

	if err := openInitial(textEditor, file); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return editor.NewSession(textEditor, os.Stdin, os.Stdout, version).Run(ctx)
}

// openInitial shows the key help, then loads file when one was given. A
// file that cannot be opened replaces the help with its warning and the
// session continues.
func openInitial(textEditor *core.Editor, file string) error {
	textEditor.SetStatusMessage(textEditor.KeyMap().HelpMessage())
	if file == "" {
		return nil
	}

	path, err := expandHome(file)
	if err != nil {
		return err
	}
	if err := textEditor.Open(path); err != nil {
		log.Println(err)
	}
	return nil
}

func setupLogging(file string) (func(), error) {
	log.SetPrefix("gokilo: ")
	if file == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
