package app

import "github.com/urfave/cli/v2"

var (
	fpsFlag = &cli.IntFlag{
		Name:    "fps",
		Aliases: []string{"f"},
		Usage:   "Frame rate for the exported timeline: 24, 25, 30, or 60 (default: 30)",
	}

	projectNameFlag = &cli.StringFlag{
		Name:    "project-name",
		Aliases: []string{"n"},
		Usage:   "Project name used as the sequence name and export file name",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a timeline export",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions archived after this point (e.g. 'yesterday', '2 weeks ago')",
	}

	indexFlag = &cli.IntFlag{
		Name:    "index",
		Aliases: []string{"i"},
		Usage:   "Position of the archived session to export, as shown by the list command",
		Value:   1,
	}

	sectionFlag = &cli.IntFlag{
		Name:  "section",
		Usage: "Store the generated script on this section of an archived session (1-based)",
	}

	playFlag = &cli.BoolFlag{
		Name:  "play",
		Usage: "Play the generated audio through the speaker",
	}

	outFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Write the result to this file",
	}

	voiceFlag = &cli.StringFlag{
		Name:  "voice",
		Usage: "Voice identifier for speech synthesis (defaults to tts_voice from the config file)",
	}

	durationFlag = &cli.Float64Flag{
		Name:  "duration",
		Usage: "Target duration in seconds",
	}

	styleFlag = &cli.StringFlag{
		Name:  "style",
		Usage: "Musical style for the cue request",
	}

	moodFlag = &cli.StringFlag{
		Name:  "mood",
		Usage: "Mood for the cue request",
	}
)
