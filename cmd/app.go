package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

// run returns the process exit status
func run(args []string, lookupEnv func(string) (string, bool), stdout, stderr io.Writer) int {
	// инициализировать параметры запуска - режим, запрос, файл:
	appParam, err := parser.InitAppMode(args, lookupEnv)
	if err != nil {
		printError(stderr, "Problem parsing arguments! - %v", err)
		return 1
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeMaster:
		err = appmode.RunMaster(ctx, appParam, stdout)
	case model.ModeSlave:
		err = appmode.RunSlave(ctx, appParam)
	default:
		err = appmode.RunLocal(appParam, stdout)
	}
	if err != nil {
		printError(stderr, "%v", err)
		return 1
	}
	return 0
}

func printError(w io.Writer, format string, args ...any) {
	prefix := color.New(color.FgRed, color.Bold)
	// color.NoColor смотрит на stdout, а пишем мы в stderr
	if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	prefix.Fprint(w, "ERROR: ")
	fmt.Fprintf(w, format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
