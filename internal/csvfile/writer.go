package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"locations/internal/models"
)

// DefaultPath is where the CSV lands when no override is configured, relative
// to the directory the exporter is run from.
const DefaultPath = "./locations.csv"

// ErrFileExists reports that the output file already exists and the user
// chose neither to overwrite it nor to append to it.
var ErrFileExists = errors.New("file already exists")

// Choice is the user's decision for an existing output file.
type Choice int

const (
	Abort Choice = iota
	Overwrite
	Append
)

// Confirmer resolves what to do when the output file already exists. It is an
// interface so the writer's decision logic can be tested without a real
// stdin interaction.
type Confirmer interface {
	Confirm(path string) (Choice, error)
}

// StdinConfirmer prompts on stdout and reads a single token from In.
// Anything other than o/O or a/A means abort.
type StdinConfirmer struct {
	In io.Reader
}

func (c StdinConfirmer) Confirm(path string) (Choice, error) {
	fmt.Printf("The file %s already exists.\n", path)
	fmt.Println("If you want to overwrite it, enter \"O\", if you want to append the data to the end of the file, enter \"A\"")
	fmt.Println("If you want to terminate the execution of the program, enter any other letter, or press CTRL+C")

	var choice string
	if _, err := fmt.Fscan(c.In, &choice); err != nil {
		return Abort, err
	}
	switch strings.ToLower(choice) {
	case "o":
		return Overwrite, nil
	case "a":
		return Append, nil
	}
	return Abort, nil
}

// Writer serializes Location records to one CSV file.
type Writer struct {
	path      string
	confirmer Confirmer
}

func NewWriter(path string, confirmer Confirmer) *Writer {
	return &Writer{path: path, confirmer: confirmer}
}

// Write writes the locations to the target path. A missing file is created
// with a header row. An existing file routes through the Confirmer: overwrite
// truncates and rewrites header plus rows, append adds rows only, and any
// other answer leaves the file untouched and returns ErrFileExists.
func (w *Writer) Write(locations []models.Location) error {
	_, err := os.Stat(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return w.writeRows(locations, os.O_WRONLY|os.O_CREATE|os.O_EXCL, true)
	}
	if err != nil {
		return err
	}

	choice, err := w.confirmer.Confirm(w.path)
	if err != nil {
		return err
	}
	switch choice {
	case Overwrite:
		return w.writeRows(locations, os.O_WRONLY|os.O_TRUNC, true)
	case Append:
		return w.writeRows(locations, os.O_WRONLY|os.O_APPEND, false)
	}
	return fmt.Errorf("%w: %s", ErrFileExists, w.path)
}

func (w *Writer) writeRows(locations []models.Location, flag int, header bool) error {
	f, err := os.OpenFile(w.path, flag, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if header {
		if err := cw.Write(models.CSVHeader); err != nil {
			return err
		}
	}
	for _, loc := range locations {
		if err := cw.Write(loc.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}
