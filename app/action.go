package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markusmobius/go-dateparser"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/tourcue/tourcue/ai/music"
	"github.com/tourcue/tourcue/ai/scriptgen"
	"github.com/tourcue/tourcue/ai/sfx"
	"github.com/tourcue/tourcue/ai/stt"
	"github.com/tourcue/tourcue/ai/tts"
	"github.com/tourcue/tourcue/config"
	"github.com/tourcue/tourcue/internal/models"
	"github.com/tourcue/tourcue/internal/timeutil"
	"github.com/tourcue/tourcue/internal/ui"
	"github.com/tourcue/tourcue/sound"
	"github.com/tourcue/tourcue/store"
	"github.com/tourcue/tourcue/timeline"
	"github.com/tourcue/tourcue/timer"
)

var errNoSuchIndex = errors.New(
	"no archived session exists at this position",
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// defaultAction launches the recorder TUI.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	var db store.DB

	client, err := store.NewClient(config.DBFilePath())
	if err != nil {
		// recording works without the archive; exports still hit disk
		pterm.Warning.Printfln("archive unavailable: %v", err)
	} else {
		db = client

		defer client.Close()
	}

	recorder := timer.NewRecorder(cfg, db)

	_, err = tea.NewProgram(recorder, tea.WithAltScreen()).Run()

	slog.Info("exiting tourcue")

	return err
}

// archivedSessions returns archived sessions ordered for display: by
// project name (natural order), then by creation time.
func archivedSessions(
	since time.Time,
) ([]*models.SessionRecord, store.DB, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	records, err := db.ListSessions(since)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	slices.SortStableFunc(records, func(a, b *models.SessionRecord) int {
		if a.ProjectName != b.ProjectName {
			if natural.Less(a.ProjectName, b.ProjectName) {
				return -1
			}

			return 1
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return records, db, nil
}

// listAction prints the archived sessions.
func listAction(ctx *cli.Context) error {
	var since time.Time

	if s := ctx.String("since"); s != "" {
		dt, err := dateparser.Parse(nil, s)
		if err != nil {
			return fmt.Errorf("unable to parse --since value %q: %w", s, err)
		}

		since = dt.Time
	}

	records, db, err := archivedSessions(since)
	if err != nil {
		return err
	}

	defer db.Close()

	if len(records) == 0 {
		pterm.Info.Println("No archived sessions yet. Export one from the recorder first.")
		return nil
	}

	tableBody := make([][]string, len(records))

	for i, rec := range records {
		var total float64
		if len(rec.Sections) > 0 {
			total = rec.Sections[len(rec.Sections)-1].End
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			ui.Green(rec.ProjectName),
			rec.CreatedAt.Format("Jan 02, 2006 03:04:05 PM"),
			strconv.Itoa(len(rec.Sections)),
			ui.Cyan(timeutil.FormatTime(total)),
			strconv.Itoa(rec.FPS),
		}
	}

	tableBody = append([][]string{
		{"#", "PROJECT", "ARCHIVED", "SECTIONS", "LENGTH", "FPS"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

// exportAction re-serializes an archived session to timeline XML.
func exportAction(ctx *cli.Context) error {
	records, db, err := archivedSessions(time.Time{})
	if err != nil {
		return err
	}

	defer db.Close()

	index := ctx.Int("index") - 1
	if index < 0 || index >= len(records) {
		return errNoSuchIndex
	}

	rec := records[index]

	fps := rec.FPS
	if ctx.Int("fps") > 0 {
		fps = ctx.Int("fps")
	}

	doc, err := timeline.Serialize(rec.Sections, fps, rec.ProjectName)
	if err != nil {
		return err
	}

	fileName := firstNonEmptyString(
		ctx.String("out"),
		config.ExportFileName(rec.ProjectName),
	)

	err = os.WriteFile(fileName, []byte(doc), 0o644)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Exported %s (%d sections) to %s",
		rec.ProjectName,
		len(rec.Sections),
		fileName,
	)

	return nil
}

// output prints text to stdout or writes it to --out.
func output(ctx *cli.Context, text string) error {
	if out := ctx.String("out"); out != "" {
		return os.WriteFile(out, []byte(text), 0o644)
	}

	fmt.Fprintln(os.Stdout, text)

	return nil
}

// transcribeAction sends an audio file to the speech-to-text service.
func transcribeAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	if ctx.Args().Len() == 0 {
		return errors.New("provide the audio file to transcribe")
	}

	if cfg.STT.BaseURL == "" {
		return errors.New("stt_url is not configured")
	}

	pathToAudio := ctx.Args().First()

	f, err := os.Open(pathToAudio)
	if err != nil {
		return err
	}

	defer f.Close()

	client := stt.NewClient(stt.Config{
		BaseURL: cfg.STT.BaseURL,
		APIKey:  cfg.STT.APIKey,
	})

	text, err := client.Transcribe(
		ctx.Context,
		f,
		filepath.Base(pathToAudio),
	)
	if err != nil {
		return err
	}

	return output(ctx, text)
}

// scriptAction generates narration text from a prompt.
func scriptAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	if ctx.Args().Len() == 0 {
		return errors.New("provide a prompt for the script")
	}

	if cfg.ScriptGen.BaseURL == "" {
		return errors.New("scriptgen_url is not configured")
	}

	client := scriptgen.NewClient(scriptgen.Config{
		BaseURL: cfg.ScriptGen.BaseURL,
		APIKey:  cfg.ScriptGen.APIKey,
	})

	text, err := client.Generate(ctx.Context, ctx.Args().First())
	if err != nil {
		return err
	}

	if ctx.Int("section") > 0 {
		if err := storeScript(ctx, text); err != nil {
			return err
		}
	}

	return output(ctx, text)
}

// storeScript writes generated narration onto a section of an archived
// session. Records are keyed by creation time, so saving the modified
// record overwrites the original in place.
func storeScript(ctx *cli.Context, text string) error {
	records, db, err := archivedSessions(time.Time{})
	if err != nil {
		return err
	}

	defer db.Close()

	index := ctx.Int("index") - 1
	if index < 0 || index >= len(records) {
		return errNoSuchIndex
	}

	rec := records[index]

	section := ctx.Int("section") - 1
	if section < 0 || section >= len(rec.Sections) {
		return fmt.Errorf(
			"session %q has no section %d",
			rec.ProjectName,
			ctx.Int("section"),
		)
	}

	rec.Sections[section].Script = text

	return db.SaveSession(rec)
}

// audioOutput plays generated audio or writes it to --out.
func audioOutput(ctx *cli.Context, audio []byte, defaultName string) error {
	if out := ctx.String("out"); out != "" {
		if err := os.WriteFile(out, audio, 0o644); err != nil {
			return err
		}

		pterm.Success.Printfln("Wrote %d bytes to %s", len(audio), out)

		return nil
	}

	if ctx.Bool("play") {
		return sound.Play(audio, ".mp3")
	}

	return os.WriteFile(defaultName, audio, 0o644)
}

// voiceAction synthesizes narration audio.
func voiceAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	if ctx.Args().Len() == 0 {
		return errors.New("provide the text to synthesize")
	}

	if cfg.TTS.BaseURL == "" {
		return errors.New("tts_url is not configured")
	}

	voice := firstNonEmptyString(ctx.String("voice"), cfg.TTSVoice)

	client := tts.NewClient(tts.Config{
		BaseURL: cfg.TTS.BaseURL,
		APIKey:  cfg.TTS.APIKey,
	})

	audio, err := client.Synthesize(
		ctx.Context,
		ctx.Args().First(),
		voice,
		tts.VoiceSettings{},
	)
	if err != nil {
		return err
	}

	return audioOutput(ctx, audio, "narration.mp3")
}

// sfxAction generates a sound effect.
func sfxAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	if ctx.Args().Len() == 0 {
		return errors.New("provide a description of the effect")
	}

	if cfg.SFX.BaseURL == "" {
		return errors.New("sfx_url is not configured")
	}

	client := sfx.NewClient(sfx.Config{
		BaseURL: cfg.SFX.BaseURL,
		APIKey:  cfg.SFX.APIKey,
	})

	audio, err := client.Generate(
		ctx.Context,
		ctx.Args().First(),
		ctx.Float64("duration"),
	)
	if err != nil {
		return err
	}

	return audioOutput(ctx, audio, "effect.mp3")
}

// musicAction archives a music cue request.
func musicAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errors.New("provide a prompt describing the music cue")
	}

	req, err := music.NewRequest(
		ctx.Args().First(),
		ctx.Float64("duration"),
		ctx.String("style"),
		ctx.String("mood"),
	)
	if err != nil {
		return err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if err = db.SaveMusicRequest(req); err != nil {
		return err
	}

	if out := ctx.String("out"); out != "" {
		requests, err := db.ListMusicRequests()
		if err != nil {
			return err
		}

		b, err := music.ExportJSON(requests)
		if err != nil {
			return err
		}

		if err = os.WriteFile(out, b, 0o644); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Music request archived: %s", req.Prompt)

	return nil
}

// editConfigAction opens the config file in the user's default text
// editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Get(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
