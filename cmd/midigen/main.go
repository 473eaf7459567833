package main

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pallinder/go-randomdata"
	midigen "github.com/Shoggoth269/MIDIGenerator"
	"github.com/urfave/cli/v3"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile_schema.json
var schemaData []byte

// profile is an optional JSON file supplying generation defaults. Explicit
// flags win over profile values.
type profile struct {
	Count  int    `json:"count"`
	Format int    `json:"format"`
	Seed   int64  `json:"seed"`
	Out    string `json:"out"`
}

func main() {
	cmd := &cli.Command{
		Name:  "midigen",
		Usage: "generate random standard MIDI files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output `file` (a name is invented when empty)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "number of files to generate",
			},
			&cli.IntFlag{
				Name:  "format",
				Value: -1,
				Usage: "impose SMF format 0, 1 or 2 (-1 picks randomly)",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 0,
				Usage: "random seed (0 seeds from the clock)",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "JSON `file` with generation defaults",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "verbose logging with source positions",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("midigen failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	initLogger(c.Bool("debug"))

	count := int(c.Int("count"))
	format := int(c.Int("format"))
	seed := int64(c.Int("seed"))
	out := c.String("out")

	if path := c.String("profile"); path != "" {
		p, err := loadProfile(path)
		if err != nil {
			return err
		}
		slog.Debug("profile loaded", "path", path)
		if !c.IsSet("count") && p.Count > 0 {
			count = p.Count
		}
		if !c.IsSet("format") {
			format = p.Format
		}
		if !c.IsSet("seed") && p.Seed != 0 {
			seed = p.Seed
		}
		if !c.IsSet("out") && p.Out != "" {
			out = p.Out
		}
	}

	if count < 1 {
		return fmt.Errorf("count %d out of range", count)
	}
	if format < -1 || format > 2 {
		return fmt.Errorf("format %d out of range", format)
	}

	var opts []midigen.Option
	if seed != 0 {
		opts = append(opts, midigen.WithSeed(seed))
	}
	generator := midigen.New(opts...)

	used := make(map[string]bool)
	for i := 0; i < count; i++ {
		name := outName(out, count, i)
		for used[name] {
			name = outName(out, count, i)
		}
		used[name] = true

		if err := writeFile(generator, name, format); err != nil {
			return err
		}
	}
	return nil
}

// initLogger routes slog to stderr, with source positions when debugging.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(handler))
}

// loadProfile reads a profile file and validates it against the embedded
// schema before trusting any of it.
func loadProfile(path string) (*profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("compiling profile schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("profile %s is invalid: %s", path, strings.Join(details, "; "))
	}

	p := &profile{Format: -1}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

// outName invents a file name when none was given, or derives numbered names
// for multi-file runs.
func outName(out string, count, i int) string {
	if out == "" {
		return strings.ToLower(randomdata.Adjective()+"-"+randomdata.Noun()) + ".mid"
	}
	if count == 1 {
		return out
	}
	ext := filepath.Ext(out)
	base := strings.TrimSuffix(out, ext)
	if ext == "" {
		ext = ".mid"
	}
	return fmt.Sprintf("%s-%03d%s", base, i+1, ext)
}

func writeFile(generator *midigen.Generator, name string, format int) error {
	var file *midigen.File
	if format >= 0 {
		file = generator.FileWithFormat(uint16(format))
	} else {
		file = generator.File()
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n, err := file.WriteTo(w)
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	slog.Info("generated",
		"file", name,
		"format", file.Header.Format,
		"tracks", file.Header.NumTracks,
		"division", file.Header.Division.String(),
		"bytes", n,
	)
	return nil
}
