// Package app defines the tourcue command-line application.
package app

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tourcue/tourcue/config"
	"github.com/tourcue/tourcue/internal/ui"
)

const (
	envNoColor        = "NO_COLOR"
	envTourcueNoColor = "TOURCUE_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// initLogging routes slog output to a rotating file in the data
// directory so the TUI is never disturbed by log lines.
func initLogging(pathToLog string) {
	logger := slog.New(slog.NewJSONHandler(
		&lumberjack.Logger{
			Filename:   pathToLog,
			MaxSize:    1,
			MaxBackups: 3,
		},
		nil,
	))

	slog.SetDefault(logger)
}

func beforeAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envTourcueNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	ui.DarkTheme = cfg.DarkTheme

	initLogging(cfg.PathToLog)

	return nil
}

// Get retrieves the tourcue app instance.
func Get() *cli.App {
	tourcueApp := &cli.App{
		Name: "tourcue",
		Usage: `
		Tourcue is a recording session timer for narrated audio tours. It keeps
		a pause-aware clock, splits the session into named sections as you move
		between spaces, and exports the result as a frame-accurate timeline for
		DaVinci Resolve.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List archived sessions",
				Action: listAction,
				Flags:  []cli.Flag{sinceFlag, noColorFlag},
			},
			{
				Name:   "export",
				Usage:  "Re-export an archived session as timeline XML",
				Action: exportAction,
				Flags:  []cli.Flag{indexFlag, fpsFlag, outFlag},
			},
			{
				Name:      "transcribe",
				Usage:     "Transcribe an audio file with the speech-to-text service",
				ArgsUsage: "FILE",
				Action:    transcribeAction,
				Flags:     []cli.Flag{outFlag},
			},
			{
				Name:      "script",
				Usage:     "Generate narration text from a prompt",
				ArgsUsage: "PROMPT",
				Action:    scriptAction,
				Flags:     []cli.Flag{indexFlag, sectionFlag, outFlag},
			},
			{
				Name:      "voice",
				Usage:     "Synthesize speech for a piece of narration",
				ArgsUsage: "TEXT",
				Action:    voiceAction,
				Flags:     []cli.Flag{voiceFlag, playFlag, outFlag},
			},
			{
				Name:      "sfx",
				Usage:     "Generate a sound effect from a description",
				ArgsUsage: "DESCRIPTION",
				Action:    sfxAction,
				Flags:     []cli.Flag{durationFlag, playFlag, outFlag},
			},
			{
				Name:      "music",
				Usage:     "Record a music cue request for later production",
				ArgsUsage: "PROMPT",
				Action:    musicAction,
				Flags:     []cli.Flag{durationFlag, styleFlag, moodFlag, outFlag},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			fpsFlag,
			projectNameFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return tourcueApp
}
