package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/riff"

	"walrus/rgb"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadRIFF reads the first palette of a RIFF PAL stream.
func ReadRIFF(r io.Reader) (Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return Palette{}, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return Palette{}, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	for i := 0; ; i++ {
		id, _, data, err := rd.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Palette{}, fmt.Errorf("no palette chunk found")
			}
			return Palette{}, fmt.Errorf("could not read chunk #%d: %w", i, err)
		}
		if id != dataType {
			continue
		}
		return readPalette(data, i)
	}
}

func readPalette(r io.Reader, chunk int) (Palette, error) {
	var p Palette

	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return p, fmt.Errorf("could not read header from chunk #%d: %w", chunk, err)
	}

	if ver := binary.LittleEndian.Uint16(header[:2]); ver != palVersion {
		return p, fmt.Errorf("unsupported palette version in chunk #%d: %#04x", chunk, ver)
	}

	count := binary.LittleEndian.Uint16(header[2:])
	if count < Size {
		return p, fmt.Errorf("palette in chunk #%d has %d colors, need %d", chunk, count, Size)
	}

	var entry [4]byte
	for i := range p {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return p, fmt.Errorf("could not read color %d/%d from chunk #%d: %w", i, count, chunk, err)
		}
		p[i] = rgb.New(entry[0], entry[1], entry[2])
	}

	return p, nil
}

// WriteRIFF writes the palette as a RIFF PAL document.
func WriteRIFF(w io.Writer, p Palette) (int64, error) {
	chunkSize := 4 + Size*4 // palVersion + palNumEntries + 4 bytes/color
	docSize := 4 + 8 + chunkSize

	buf := make([]byte, 0, 8+docSize)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(docSize))
	buf = append(buf, palType[:]...)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(chunkSize))
	buf = binary.LittleEndian.AppendUint16(buf, palVersion)
	buf = binary.LittleEndian.AppendUint16(buf, Size)
	for _, c := range p {
		buf = append(buf, c.R, c.G, c.B, 0x00)
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("could not write palette: %w", err)
	} else if n != len(buf) {
		return int64(n), fmt.Errorf("wrote only %d/%d bytes", n, len(buf))
	}
	return int64(n), nil
}
