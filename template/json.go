package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"walrus/palette"
	"walrus/rgb"
)

// Document is the layout of the JSON export.
type Document struct {
	Wallpaper string  `json:"wallpaper"`
	Alpha     string  `json:"alpha"`
	Special   Special `json:"special"`
	Colors    Colors  `json:"colors"`
}

type Special struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Cursor     string `json:"cursor"`
}

// Colors holds color0 to color15, marshalled as an object in slot order.
type Colors [palette.Size]string

func (c Colors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `"color%d":%s`, i, val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Colors) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for i := range c {
		v, ok := m["color"+strconv.Itoa(i)]
		if !ok {
			return fmt.Errorf("missing color%d", i)
		}
		c[i] = v
	}
	return nil
}

// NewDocument describes p with the same hex form as the other exports.
func NewDocument(p palette.Palette, opts Options) Document {
	vars := Bindings(p, opts)
	doc := Document{
		Wallpaper: vars["wallpaper"],
		Alpha:     vars["alpha"],
		Special: Special{
			Background: vars["background"],
			Foreground: vars["foreground"],
			Cursor:     vars["cursor"],
		},
	}
	for i := range doc.Colors {
		doc.Colors[i] = vars["color"+strconv.Itoa(i)]
	}
	return doc
}

func MarshalJSON(p palette.Palette, opts Options) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(p, opts), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("could not encode palette: %w", err)
	}
	return append(data, '\n'), nil
}

// LoadJSON reads a palette back from a JSON export.
func LoadJSON(r io.Reader) (palette.Palette, Document, error) {
	var p palette.Palette
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return p, doc, fmt.Errorf("could not decode palette: %w", err)
	}

	for i, v := range doc.Colors {
		c, err := rgb.ParseHex(v)
		if err != nil {
			return p, doc, fmt.Errorf("invalid color%d: %w", i, err)
		}
		p[i] = c
	}
	return p, doc, nil
}
