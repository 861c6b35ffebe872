// Command dicegolf-preview generates a hole without the terminal UI and
// writes it as a JSON snapshot, a PNG image, or both.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/samdwyer/dicegolf/internal/course"
	"github.com/samdwyer/dicegolf/internal/gamedata"
	"github.com/samdwyer/dicegolf/internal/preview"
	"github.com/samdwyer/dicegolf/internal/world"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("dicegolf-preview", flag.ContinueOnError)
	seed := fs.String("seed", "", "hole seed (required)")
	width := fs.Int("width", world.DefaultWidth, "hole width in cells")
	height := fs.Int("height", world.DefaultHeight, "hole height in cells")
	pngPath := fs.String("png", "", "write a PNG preview to this path")
	jsonPath := fs.String("json", "", "write the snapshot to this path, - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seed == "" {
		return fmt.Errorf("-seed is required")
	}
	if *pngPath == "" && *jsonPath == "" {
		*jsonPath = "-"
	}

	t, err := course.New(context.Background(), *seed, *width, *height)
	if err != nil {
		return err
	}

	if *jsonPath != "" {
		if err := writeSnapshot(t, *jsonPath, stdout); err != nil {
			return err
		}
	}
	if *pngPath != "" {
		if err := writePNG(t, *pngPath); err != nil {
			return err
		}
	}
	return nil
}

func writeSnapshot(t *course.Terrain, path string, stdout io.Writer) error {
	out := stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func writePNG(t *course.Terrain, path string) error {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := preview.Encode(f, t, palette); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
