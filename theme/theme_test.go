package theme_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walrus/palette"
	"walrus/rgb"
	"walrus/theme"
)

func writeImage(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			c := color.NRGBA{R: 200, G: 40, B: 40, A: 255}
			if x >= 48 {
				c = color.NRGBA{R: 30, G: 60, B: 120, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, "wall.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func testEnv(t *testing.T) *theme.Env {
	return &theme.Env{Workers: 2, ConfigDir: t.TempDir(), Out: &bytes.Buffer{}}
}

func TestGenAndLoad(t *testing.T) {
	dir := t.TempDir()
	templates := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templates, "kitty.conf"), []byte("background {background}\n"), 0o644))

	env := testEnv(t)
	out := theme.Output{Dir: filepath.Join(dir, "cache"), Templates: templates, Alpha: 100, NoBroadcast: true, Pal: true}
	gen := theme.GenCmd{Image: writeImage(t, dir), Saturation: 1, Backend: "haishoku", Output: out}
	require.NoError(t, gen.Run(env))

	for _, name := range []string{
		"colors.Xresources", "colors.css", "colors.json", "colors.scss", "colors.sh",
		theme.SequencesFile, theme.PaletteFile, "kitty.conf",
	} {
		assert.FileExists(t, filepath.Join(out.Dir, name))
	}

	want, err := palette.Generate(gen.Image, palette.Options{Saturation: 1})
	require.NoError(t, err)

	kitty, err := os.ReadFile(filepath.Join(out.Dir, "kitty.conf"))
	require.NoError(t, err)
	assert.Equal(t, "background "+want.Background().Hex()+"\n", string(kitty))

	seq, err := os.ReadFile(filepath.Join(out.Dir, theme.SequencesFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(seq), "\x1b]4;0;"+want.Background().Hex()))

	sh, err := os.ReadFile(filepath.Join(out.Dir, "colors.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(sh), "wallpaper='"+gen.Image+"'")

	// reloading the exports gives back the same palette
	for _, name := range []string{"colors.json", theme.PaletteFile} {
		reloaded := filepath.Join(dir, "reloaded-"+strings.TrimPrefix(filepath.Ext(name), "."))
		load := theme.LoadCmd{
			File:   filepath.Join(out.Dir, name),
			Output: theme.Output{Dir: reloaded, Alpha: 100, NoBroadcast: true},
		}
		require.NoError(t, load.Run(env))

		got, err := os.ReadFile(filepath.Join(reloaded, "colors.json"))
		require.NoError(t, err)
		orig, err := os.ReadFile(filepath.Join(out.Dir, "colors.json"))
		require.NoError(t, err)
		if name == "colors.json" {
			assert.Equal(t, string(orig), string(got))
		} else {
			assert.Contains(t, string(got), want.Background().Hex())
		}
	}
}

func TestGenErrors(t *testing.T) {
	env := testEnv(t)
	gen := theme.GenCmd{
		Image:      filepath.Join(t.TempDir(), "missing.png"),
		Saturation: 1,
		Output:     theme.Output{Dir: t.TempDir(), Alpha: 100, NoBroadcast: true},
	}
	assert.ErrorIs(t, gen.Run(env), os.ErrNotExist)

	load := theme.LoadCmd{File: filepath.Join(t.TempDir(), "missing.json"), Output: gen.Output}
	assert.Error(t, load.Run(env))
}

func TestValidate(t *testing.T) {
	gen := theme.GenCmd{Backend: "kmeans", Output: theme.Output{Alpha: 100}}
	assert.NoError(t, gen.Validate(nil))

	gen.Backend = "median-cut"
	assert.Error(t, gen.Validate(nil))

	load := theme.LoadCmd{Output: theme.Output{Alpha: 101}}
	assert.Error(t, load.Validate(nil))
}

func TestInit(t *testing.T) {
	env := testEnv(t)
	dest := filepath.Join(env.ConfigDir, "templates")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "mine.conf"), []byte("{color0}"), 0o644))

	// existing templates are kept without --force
	require.NoError(t, (&theme.InitCmd{}).Run(env))
	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPreview(t *testing.T) {
	var p palette.Palette
	for i := range p {
		p[i] = rgb.New(uint8(i*16), 0, 0)
	}

	lines := strings.Split(theme.Preview(p), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 8*3, lipgloss.Width(line))
	}

	var buf bytes.Buffer
	env := &theme.Env{Workers: 1, ConfigDir: t.TempDir(), Out: &buf}
	require.NoError(t, theme.Apply(env, p, "", theme.Output{Dir: t.TempDir(), Alpha: 100, NoBroadcast: true, Preview: true}))
	assert.Equal(t, theme.Preview(p)+"\n", buf.String())
}

func TestStripOnlyAffectsExports(t *testing.T) {
	dir := t.TempDir()
	templates := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templates, "kitty.conf"),
		[]byte("background {background}\nbare {background.strip}\n"), 0o644))

	out := theme.Output{Dir: filepath.Join(dir, "cache"), Templates: templates, Alpha: 100, NoBroadcast: true, Strip: true}
	gen := theme.GenCmd{Image: writeImage(t, dir), Saturation: 1, Backend: "haishoku", Output: out}
	require.NoError(t, gen.Run(testEnv(t)))

	want, err := palette.Generate(gen.Image, palette.Options{Saturation: 1})
	require.NoError(t, err)
	bg := want.Background()

	kitty, err := os.ReadFile(filepath.Join(out.Dir, "kitty.conf"))
	require.NoError(t, err)
	assert.Equal(t, "background "+bg.Hex()+"\nbare "+bg.HexStripped()+"\n", string(kitty))

	sh, err := os.ReadFile(filepath.Join(out.Dir, "colors.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(sh), "background='"+bg.HexStripped()+"'")
}

func TestInitFromConfigFolder(t *testing.T) {
	env := testEnv(t)
	dest := filepath.Join(env.ConfigDir, "templates")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "kitty.conf"), []byte("background {background}\n"), 0o644))

	t.Chdir(env.ConfigDir)
	// the only source found is the destination itself
	_ = (&theme.InitCmd{Force: true}).Run(env)

	content, err := os.ReadFile(filepath.Join(dest, "kitty.conf"))
	require.NoError(t, err)
	assert.Equal(t, "background {background}\n", string(content))
}

func TestInitWithoutConfigFolder(t *testing.T) {
	env := testEnv(t)
	env.ConfigDir = ""
	assert.Error(t, (&theme.InitCmd{Force: true}).Run(env))
}

func TestDefaultConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := theme.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "walrus"), dir)
}
