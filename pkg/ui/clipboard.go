package ui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard copies text to the system clipboard when a native tool is
// available and always writes an OSC 52 sequence to Terminal.
type Clipboard struct {
	Terminal io.Writer
	Native   func(string) error
}

// NewClipboard returns a Clipboard that writes OSC 52 to w and uses the
// platform clipboard.
func NewClipboard(w io.Writer) Clipboard {
	return Clipboard{Terminal: w, Native: clipboard.WriteAll}
}

// Copy places text on the clipboard. Native failures are ignored since the
// OSC 52 sequence still reaches terminals that support it.
func (c Clipboard) Copy(text string) error {
	if c.Native != nil && !clipboard.Unsupported {
		_ = c.Native(text)
	}
	if c.Terminal == nil {
		return nil
	}
	_, err := fmt.Fprint(c.Terminal, osc52.New(text))
	return err
}
