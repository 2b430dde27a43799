package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/dirline/audio"
	"github.com/lixenwraith/dirline/config"
	"github.com/lixenwraith/dirline/render"
	"github.com/lixenwraith/dirline/session"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "dirline",
		Short:         "Drag two points on a board and watch their perpendicular",
		Long:          "dirline draws a segment between two draggable markers and a direction indicator\nperpendicular to it. Drag markers with the mouse; click [ reverse ] to flip the indicator.\nPress q, Esc or Ctrl+C to quit.",
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "config file (toml, yaml or json)")
	f.Int("rows", 0, "board height in terminal rows (at least 3), 0 fits the terminal")
	f.Bool("audio", true, "play interaction cues")
	f.Bool("debug", false, "write a debug log")
	f.String("log-dir", "logs", "directory for the debug log")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logFile, err := setupLogging(cfg.Log.Debug, cfg.Log.Dir, cfg.Log.MaxSize)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	palette, err := cfg.Theme.Palette()
	if err != nil {
		return err
	}
	theme := render.NewTheme(palette)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\nDIRLINE CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, editor works without sound
			logrus.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			defer sound.Cleanup()
		}
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"rows":    cfg.Board.Rows,
		"audio":   sound.Initialized(),
	}).Info("starting")

	sess := session.New(screen, session.Options{
		Rows:         cfg.Board.Rows,
		Theme:        &theme,
		Sound:        sound,
		Logger:       logrus.StandardLogger(),
		CrashHandler: crash,
	})
	return sess.Run(ctx)
}
