// Package logging routes the standard logger for a run.
package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging. With an empty filename log output is
// discarded; otherwise it is appended to filename, and the Bubble Tea
// programs log there too.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	// LogToFile points the standard logger at the file as well.
	f, err := tea.LogToFile(filename, "probeviz")
	if err != nil {
		return nil, err
	}

	return func() {
		log.SetOutput(io.Discard)
		log.SetPrefix("")
		f.Close()
	}, nil
}
