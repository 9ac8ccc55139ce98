// Command pxlrender renders a TOML drawing script with the pxl rasterizer.
//
// Usage:
//
//	pxlrender -script scene.toml -output scene.png
//	pxlrender -script scene.toml -frames out/ -v
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/pxl"
	"github.com/gogpu/pxl/present"
)

func main() {
	var (
		script  = flag.String("script", "", "render script (TOML)")
		output  = flag.String("output", "out.png", "output PNG file")
		frames  = flag.String("frames", "", "also present the result and write frames to this directory")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		pxl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *script == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*script, *output, *frames); err != nil {
		log.Fatalf("pxlrender: %v", err)
	}
	log.Printf("Rendered %s to %s\n", *script, *output)
}

func run(scriptPath, output, framesDir string) error {
	f, err := os.Open(filepath.Clean(scriptPath))
	if err != nil {
		return err
	}
	s, err := decodeScript(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	var opts []pxl.ContextOption
	if framesDir != "" {
		if err := os.MkdirAll(framesDir, 0o750); err != nil {
			return err
		}
		out, err := present.Open("", present.Options{
			Width:  s.Width,
			Height: s.Height,
			Sink:   present.PNGSequence(framesDir, "frame"),
		})
		if err != nil {
			return err
		}
		opts = append(opts, pxl.WithPresenter(out))
	}

	r, err := newRenderer(s, opts...)
	if err != nil {
		return err
	}
	defer r.canvas.Release()

	if err := r.run(s); err != nil {
		return err
	}
	if err := r.canvas.SavePNG(output); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if framesDir != "" {
		r.ctx.ClearScreen()
		r.ctx.SetIcon(r.canvas)
		r.ctx.Expose(r.canvas, 0, 0, 0, 0)
		if err := r.ctx.Flip(); err != nil {
			return err
		}
	}
	return nil
}
