package adttext

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/adtkit/pkg/types"
)

// Decode converts input to the UTF-8 (or plain byte) form the parser reads.
// A byte order mark takes precedence over enc: a UTF-8 BOM is skipped and
// UTF-16 input is transcoded. Without a BOM, enc names the source encoding;
// the empty string means UTF-8 and returns data without copying.
func Decode(data []byte, enc string) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return data[len(utf8BOM):], nil
	case bytes.HasPrefix(data, utf16LEBOM):
		return transcode(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
	case bytes.HasPrefix(data, utf16BEBOM):
		return transcode(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data)
	}

	switch strings.ToUpper(enc) {
	case "", EncodingUTF8, "UTF8":
		return data, nil
	case EncodingUTF16LE:
		return transcode(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
	case EncodingUTF16BE:
		return transcode(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), data)
	case EncodingLatin1, "LATIN1":
		return transcode(charmap.ISO8859_1, data)
	case EncodingWindows1252, "CP1252":
		return transcode(charmap.Windows1252, data)
	default:
		return nil, types.Errorf(types.ErrKindUnsupported, "unsupported encoding %q", enc)
	}
}

func transcode(e encoding.Encoding, data []byte) ([]byte, error) {
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindInput, Msg: "decoding input", Offset: types.NoOffset, Err: err}
	}
	return out, nil
}
