// Package theme holds the commands generating, reloading and applying
// terminal color schemes.
package theme

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"walrus/palette"
	"walrus/quantize"
	"walrus/template"
)

// DefaultConfigDir is ~/.config/walrus, the folder config.json is read from.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not locate home folder: %w", err)
	}
	return filepath.Join(home, ".config", "walrus"), nil
}

// Env is the environment shared by every command.
type Env struct {
	Workers   int
	ConfigDir string
	Darwin    bool
	Out       io.Writer
}

type GenCmd struct {
	Image      string  `arg:"" help:"Image to extract the colors from" type:"existingfile"`
	Light      bool    `short:"l" help:"Generate a light color scheme" default:"false"`
	Saturation float32 `short:"s" help:"Saturation of the accent colors, in (0, 1]" default:"1.0"`
	Backend    string  `help:"Color extraction backend" enum:"haishoku,dominantcolor,kmeans" default:"haishoku"`
	Output     `embed:""`
}

func (c *GenCmd) Validate(kctx *kong.Context) error {
	if _, err := quantize.Lookup(c.Backend); err != nil {
		return err
	}
	return c.Output.validate()
}

func (c *GenCmd) Run(env *Env) error {
	p, err := palette.Generate(c.Image, palette.Options{
		Backend:    c.Backend,
		Light:      c.Light,
		Saturation: c.Saturation,
	})
	if err != nil {
		return err
	}

	wallpaper, err := filepath.Abs(c.Image)
	if err != nil {
		return fmt.Errorf("invalid image path %q: %w", c.Image, err)
	}
	return Apply(env, p, wallpaper, c.Output)
}

type LoadCmd struct {
	File   string `arg:"" help:"colors.json export or RIFF palette (.pal) to reload" type:"existingfile"`
	Output `embed:""`
}

func (c *LoadCmd) Validate(kctx *kong.Context) error {
	return c.Output.validate()
}

func (c *LoadCmd) Run(env *Env) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("could not read palette %q: %w", c.File, err)
	}

	var (
		p         palette.Palette
		wallpaper string
	)
	if strings.EqualFold(filepath.Ext(c.File), ".pal") {
		p, err = palette.ReadRIFF(bytes.NewReader(data))
	} else {
		var doc template.Document
		p, doc, err = template.LoadJSON(bytes.NewReader(data))
		wallpaper = doc.Wallpaper
	}
	if err != nil {
		return fmt.Errorf("could not load palette %q: %w", c.File, err)
	}

	slog.Info("loaded palette", "file", c.File, "background", p.Background().Hex())
	return Apply(env, p, wallpaper, c.Output)
}

type InitCmd struct {
	Force bool `help:"Overwrite templates already installed" default:"false"`
}

func (c *InitCmd) Run(env *Env) error {
	if env.ConfigDir == "" {
		return fmt.Errorf("no config folder to install templates into")
	}

	dest := filepath.Join(env.ConfigDir, "templates")
	if !c.Force {
		if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 {
			slog.Info("templates already installed", "dir", dest)
			return nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	copied, err := template.Install(template.InstallSources(filepath.Dir(exe)), dest)
	if err != nil {
		return err
	}
	slog.Info("installed templates", "dir", dest, "count", len(copied))
	return nil
}
