package theme

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"walrus/palette"
	"walrus/sequences"
	"walrus/template"
)

// SequencesFile holds the escape sequences of the last applied palette.
const SequencesFile = "sequences"

// PaletteFile holds the RIFF palette when requested.
const PaletteFile = "colors.pal"

// Output controls where and how a palette is applied.
type Output struct {
	Dir         string `short:"o" help:"Output folder for the exports" default:"~/.cache/walrus" type:"path"`
	Strip       bool   `help:"Strip the leading # from colors in the exports" default:"false"`
	Templates   string `short:"t" help:"Folder of user templates" type:"path"`
	Alpha       int    `help:"Background alpha in percent" default:"100"`
	VTE         bool   `help:"Skip the sequence VTE terminals print as garbage" default:"false"`
	NoBroadcast bool   `help:"Do not send the sequences to open terminals" default:"false"`
	Preview     bool   `help:"Print the palette swatches" default:"false"`
	Pal         bool   `help:"Also write the palette as a RIFF PAL file" default:"false"`
}

func (o *Output) validate() error {
	if o.Alpha < 0 || o.Alpha > 100 {
		return fmt.Errorf("invalid alpha: %d", o.Alpha)
	}
	return nil
}

// Apply writes the exports, renders the user templates and broadcasts the
// sequences of p.
func Apply(env *Env, p palette.Palette, wallpaper string, out Output) error {
	logger := slog.Default().With("dir", out.Dir)

	opts := template.Options{Strip: out.Strip, Wallpaper: wallpaper, Alpha: out.Alpha}
	written, err := template.WriteExports(out.Dir, p, opts)
	if err != nil {
		return err
	}
	logger.Info("wrote exports", "count", len(written))

	seq := sequences.Build(p, sequences.Options{Alpha: out.Alpha, VTEFix: out.VTE, Darwin: env.Darwin})
	if _, err = template.WriteFile(out.Dir, SequencesFile, []byte(seq)); err != nil {
		return err
	}

	if out.Pal {
		var buf bytes.Buffer
		if _, err = palette.WriteRIFF(&buf, p); err != nil {
			return err
		}
		if _, err = template.WriteFile(out.Dir, PaletteFile, buf.Bytes()); err != nil {
			return err
		}
	}

	// user templates always get the #rrggbb form, {name.strip} gives the bare one
	vars := template.Bindings(p, template.Options{Wallpaper: wallpaper, Alpha: out.Alpha})
	dir, processed, err := template.ProcessFirst(template.SearchDirs(out.Templates, env.ConfigDir), out.Dir, vars, env.Workers)
	if err != nil {
		logger.Error("could not render templates", "templates", dir, "error", err)
	} else if dir != "" {
		logger.Info("rendered templates", "templates", dir, "count", len(processed))
	}

	if !out.NoBroadcast {
		target := sequences.DefaultTarget(env.Darwin)
		report, err := sequences.Broadcast(seq, target, env.Workers)
		if err != nil {
			logger.Warn("could not broadcast sequences", "error", err)
		} else {
			logger.Info("broadcast sequences", "terminals", len(report.Written), "errors", len(report.Failed))
		}
	}

	if out.Preview && env.Out != nil {
		if f, ok := env.Out.(*os.File); !ok || isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			fmt.Fprintln(env.Out, Preview(p))
		}
	}

	return nil
}
