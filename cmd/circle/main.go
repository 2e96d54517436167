// cmd/circle/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"

	"go-modular-circle/internal/app"
	"go-modular-circle/internal/config"
	"go-modular-circle/internal/defs"
	"go-modular-circle/internal/export"
	"go-modular-circle/internal/geometry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		points      = flag.Int("points", config.PointsDefault, "number of points on the circle (1-1000)")
		multiplier  = flag.Int("multiplier", config.MultiplierDefault, "chord multiplier (1-200)")
		rainbow     = flag.Bool("rainbow", false, "colour chords by index")
		presetsPath = flag.String("presets", "", "JSON file with presets for keys 1-9")
		exportPath  = flag.String("export", "", "render to this PNG file and exit instead of opening a window")
		exportSize  = flag.Int("size", config.CanvasSize, "edge length of the exported PNG in pixels")
		caption     = flag.Bool("caption", true, "print the parameters on the exported PNG")
		pprofAddr   = flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			logger.Error("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	presets := defs.BuiltinPresets
	if *presetsPath != "" {
		loaded, err := defs.LoadPresets(*presetsPath)
		if err != nil {
			log.Fatal(err)
		}
		presets = loaded
		logger.Info("loaded presets", "path", *presetsPath, "count", len(presets))
	}

	if *exportPath != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runExport(ctx, *exportPath, *points, *multiplier, *exportSize, *rainbow, *caption, logger); err != nil {
			logger.Error("export failed", "err", err)
			os.Exit(1)
		}
		return
	}

	v, err := app.New(app.Options{
		Points:     *points,
		Multiplier: *multiplier,
		Rainbow:    *rainbow,
		Presets:    presets,
		Logger:     logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Modular Multiplication Circle - arrows/1-9: change, R: redraw, C: colours, S: save, Esc: quit")
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func runExport(ctx context.Context, path string, points, multiplier, size int, rainbow, caption bool, logger *slog.Logger) error {
	params := geometry.NewParams(points, multiplier)
	opts := export.Options{
		Size:    size,
		Palette: export.DefaultPalette(rainbow),
		Caption: caption,
		Logger:  logger,
	}
	snap := params.Snapshot()
	if err := export.WritePNG(ctx, path, snap, opts); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	logger.Info("exported", "path", path, "points", snap.Points, "multiplier", snap.Multiplier, "size", size)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
