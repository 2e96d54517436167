// internal/app/save.go
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go-modular-circle/internal/config"
	"go-modular-circle/internal/export"
	"go-modular-circle/internal/geometry"

	"github.com/ncruces/zenity"
)

// startSave asks for a file name and writes the current drawing as PNG.
// The dialog blocks, so it runs off the display goroutine and reports back
// through notices.
func (v *Visualizer) startSave() {
	if !v.saving.CompareAndSwap(false, true) {
		return
	}
	snap := v.pipe.params.Snapshot()
	opts := export.DefaultOptions()
	opts.Palette = v.canvas.Palette()
	opts.Logger = v.logger

	go func() {
		n := v.save(snap, opts)
		v.saving.Store(false)
		v.notices <- n
	}()
}

func (v *Visualizer) save(snap geometry.Snapshot, opts export.Options) notice {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save PNG"),
		zenity.Filename(config.ExportFileName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return notice{msg: "Save cancelled"}
		}
		v.logger.Error("save dialog failed", "err", err)
		return notice{msg: "Save failed: " + err.Error(), isErr: true}
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}

	if err := export.WritePNG(v.pipe.ctx, path, snap, opts); err != nil {
		v.logger.Error("export failed", "path", path, "err", err)
		return notice{msg: "Save failed: " + err.Error(), isErr: true}
	}
	v.logger.Info("exported", "path", path, "points", snap.Points, "multiplier", snap.Multiplier)
	return notice{msg: fmt.Sprintf("Saved %s", filepath.Base(path))}
}
