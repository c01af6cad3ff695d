package bootstrap

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog"

	launcherinadapter "flatpick/internal/modules/launcher/adapter/in"
	launcheroutadapter "flatpick/internal/modules/launcher/adapter/out"
	launcherout "flatpick/internal/modules/launcher/port/out"
	launcherservice "flatpick/internal/modules/launcher/service"
	launcherusecase "flatpick/internal/modules/launcher/usecase"
	"flatpick/internal/platform/config"
)

// Streams are the terminal streams handed to the prompt, the picker and the launched command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type App struct {
	LauncherCLI launcherinadapter.CLIHandler
	// FinderMode is the selector actually wired, with auto resolved.
	FinderMode string
}

func New(cfg config.Config, streams Streams, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	inventoryArgv, err := cfg.InventoryArgv()
	if err != nil {
		return nil, err
	}
	mode, selector, err := newSelector(cfg, streams, log)
	if err != nil {
		return nil, fmt.Errorf("new selector: %w", err)
	}
	log.Debug().Str("mode", mode).Str("config", cfg.Path).Msg("selector wired")

	launcherUC := launcherusecase.NewInteractor(launcherservice.NewLauncherService(
		launcheroutadapter.NewFlatpakInventory(inventoryArgv, log),
		selector,
		launcheroutadapter.NewLinePrompter(streams.In, streams.Out),
		launcheroutadapter.NewHostShellRunner(cfg.Run.Shell, streams.In, streams.Out, streams.Err, log),
		cfg.Run.Prefix,
		log,
	))

	return &App{
		LauncherCLI: launcherinadapter.NewCLIHandler(launcherUC),
		FinderMode:  mode,
	}, nil
}

func newSelector(cfg config.Config, streams Streams, log zerolog.Logger) (string, launcherout.Selector, error) {
	finderArgv, err := cfg.FinderArgv()
	if err != nil {
		return "", nil, err
	}
	mode := cfg.Finder.Mode
	if mode == config.FinderAuto {
		mode = config.FinderBuiltin
		if _, err := exec.LookPath(finderArgv[0]); err == nil {
			mode = config.FinderFZF
		}
	}
	switch mode {
	case config.FinderFZF:
		return mode, launcheroutadapter.NewFZFSelector(finderArgv, streams.Err, log), nil
	case config.FinderBuiltin:
		return mode, launcheroutadapter.NewBuiltinSelector(streams.In, streams.Err, log), nil
	default:
		return "", nil, fmt.Errorf("unknown finder mode %q", mode)
	}
}
