// Package parser puts command line arguments and environment into AppInit structure and validates it
package parser

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

var (
	ErrMissingQuery    = errors.New("can't find query string")
	ErrMissingFilename = errors.New("can't find file name")
)

const usage = "Usage: minigrep [-mode local|master|slave] [-node URL]... [-quorum N] [-address ADDR] [--] query file"

// InitAppMode parses args (without the program name). lookupEnv is os.LookupEnv in production.
func InitAppMode(args []string, lookupEnv func(string) (string, bool)) (*model.AppInit, error) {
	var appInit model.AppInit
	flagParser := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	flagParser.SetOutput(io.Discard)

	mode := flagParser.String("mode", string(model.ModeLocal), "specify mode of the app: 'local', 'master' or 'slave'")
	addr := flagParser.String("address", "", fmt.Sprintf("specify slave-node address (NB: %q is already used by master-node)", model.DefaultMasterAddress))
	q := flagParser.Int("quorum", 0, "set slave-nodes N for quorum")
	flagParser.Var(&appInit.Slaves, "node", "set slave-node address")

	// флаги разбираем, только если аргументы с них начинаются: иначе первый аргумент - запрос, даже "-v"
	positional := args
	if len(args) > 0 && isOwnFlag(flagParser, args[0]) {
		if err := flagParser.Parse(args); err != nil {
			return nil, fmt.Errorf("%w\n%s", err, usage)
		}
		positional = flagParser.Args()
	}

	appInit.Mode = model.AppMode(*mode)

	// проверяем режим
	switch appInit.Mode {
	case model.ModeLocal:
		if err := initSearchParam(&appInit, positional, lookupEnv); err != nil {
			return nil, err
		}
	case model.ModeMaster:
		if err := initSearchParam(&appInit, positional, lookupEnv); err != nil {
			return nil, err
		}
		if err := initMasterParam(&appInit, *q); err != nil {
			return nil, err
		}
	case model.ModeSlave:
		if err := initSlaveParam(&appInit, *addr); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown mode %q specified", appInit.Mode)
	}

	return &appInit, nil
}

// isOwnFlag reports whether arg is "--", -h/-help or one of the flags defined in fs
func isOwnFlag(fs *flag.FlagSet, arg string) bool {
	if arg == "--" {
		return true
	}
	name, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return false
	}
	name = strings.TrimPrefix(name, "-")
	name, _, _ = strings.Cut(name, "=")
	if name == "h" || name == "help" {
		return true
	}
	return fs.Lookup(name) != nil
}

// initSearchParam takes query and file name from positional args, anything after them is ignored
func initSearchParam(ai *model.AppInit, args []string, lookupEnv func(string) (string, bool)) error {
	switch len(args) {
	case 0:
		return ErrMissingQuery
	case 1:
		return ErrMissingFilename
	}
	ai.Query = args[0]
	ai.FileName = args[1]

	// значение переменной не важно, только её наличие
	_, ai.CaseSensitive = lookupEnv(model.CaseSensitiveEnv)
	return nil
}

func initMasterParam(ai *model.AppInit, quorum int) error {
	if len(ai.Slaves) == 0 {
		return errors.New("at least one -node must be provided running in 'master'-mode")
	}
	if quorum <= 0 || quorum > len(ai.Slaves) {
		return fmt.Errorf("incorrect quorum N provided: %d for %d node(s)", quorum, len(ai.Slaves))
	}
	ai.Quorum = quorum
	ai.Address = model.DefaultMasterAddress
	return nil
}

func initSlaveParam(ai *model.AppInit, addr string) error {
	switch addr {
	case "":
		return errors.New("empty slave-node address")
	case model.DefaultMasterAddress:
		return errors.New("specified slave-node address not available")
	default:
		ai.Address = addr
		return nil
	}
}
