package modcfg

import (
	"encoding/xml"
	"fmt"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"

	"github.com/danieljhkim/stagereslot/internal/fsops"
)

// XMSBTFile is the message file holding stage display names, relative to the mod root.
var XMSBTFile = filepath.Join("ui", "message", "msg_name.xmsbt")

const xmsbtHeader = `<?xml version='1.0' encoding='utf-16'?>` + "\n"

type xmsbtDoc struct {
	XMLName xml.Name     `xml:"xmsbt"`
	Entries []xmsbtEntry `xml:"entry"`
}

type xmsbtEntry struct {
	Label string `xml:"label,attr"`
	Text  string `xml:"text"`
}

// StageNameLabel returns the message label of a stage's display name.
func StageNameLabel(stage string) string {
	return "nam_stg1_" + stage
}

// EncodeStageName renders a message file with one display-name entry,
// encoded as UTF-16 little-endian with a byte order mark.
func EncodeStageName(stage, displayName string) ([]byte, error) {
	doc := xmsbtDoc{Entries: []xmsbtEntry{{Label: StageNameLabel(stage), Text: displayName}}}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode xmsbt: %w", err)
	}

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.Bytes(append([]byte(xmsbtHeader), body...))
	if err != nil {
		return nil, fmt.Errorf("failed to encode xmsbt as utf-16: %w", err)
	}
	return out, nil
}

// WriteStageName writes ui/message/msg_name.xmsbt, overwriting any existing file.
func WriteStageName(fs fsops.FS, root, stage, displayName string) (string, error) {
	data, err := EncodeStageName(stage, displayName)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, XMSBTFile)
	if err := fs.AtomicWrite(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
