package timer

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/tourcue/tourcue/config"
	"github.com/tourcue/tourcue/internal/models"
	"github.com/tourcue/tourcue/timeline"
)

// export serializes the current section list, writes the timeline file to
// the working directory, and archives the finished session. The live
// session is left untouched so recording can continue afterwards.
func (r *Recorder) export() error {
	doc, err := timeline.Serialize(
		r.session.Sections(),
		r.Opts.FPS,
		r.Opts.ProjectName,
	)
	if err != nil {
		return err
	}

	fileName := config.ExportFileName(r.Opts.ProjectName)

	err = os.WriteFile(fileName, []byte(doc), 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}

	if r.db != nil {
		rec := &models.SessionRecord{
			CreatedAt:   time.Now(),
			ProjectName: r.Opts.ProjectName,
			FPS:         r.Opts.FPS,
			Sections:    r.session.Sections(),
		}

		if err = r.db.SaveSession(rec); err != nil {
			// the XML file is already on disk, so report and move on
			slog.Error("archiving session failed", slog.Any("error", err))
		}
	}

	r.status = fmt.Sprintf("Exported %d sections to %s", r.session.Len(), fileName)

	slog.Info("timeline exported",
		slog.String("file", fileName),
		slog.Int("sections", r.session.Len()),
		slog.Int("fps", r.Opts.FPS),
	)

	r.notifyExport(fileName)

	return r.runPostExportCmd()
}

// notifyExport sends a desktop notification when enabled.
func (r *Recorder) notifyExport(fileName string) {
	if !r.Opts.Notify {
		return
	}

	err := beeep.Notify(
		"Timeline exported",
		fmt.Sprintf("%s is ready to import", fileName),
		"",
	)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runPostExportCmd executes the configured post-export hook.
func (r *Recorder) runPostExportCmd() error {
	if r.Opts.PostExportCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(r.Opts.PostExportCmd)
	if err != nil {
		return fmt.Errorf("unable to parse post_export_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}
