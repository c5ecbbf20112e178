package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Store reads and writes the document at a fixed path.
type Store struct {
	Path   string
	logger *log.Logger
}

// NewStore returns a store for path. A nil logger discards log output.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{Path: path, logger: logger}
}

// Load reads and parses a document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse todo file: %w", err)
	}

	return &d, nil
}

// Save writes the document to path with 2-space indentation.
// Counters are recomputed from the task list first.
func (d *Document) Save(path string) error {
	d.normalize()

	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}

	return nil
}

// Marshal encodes the document the way Save writes it.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Task text is written verbatim, '<' and '&' included.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("marshal todo file: %w", err)
	}
	// Encode already adds the trailing newline.
	return buf.Bytes(), nil
}

// Load reads the document.
func (s *Store) Load() (*Document, error) {
	return Load(s.Path)
}

// Save writes the document.
func (s *Store) Save(d *Document) error {
	if err := d.Save(s.Path); err != nil {
		return err
	}
	s.logger.Debug("saved todo file", "path", s.Path, "tasks", len(d.Tasks), "remember", len(d.RememberItems))
	return nil
}

// Exists reports whether the document file is present.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.Path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat todo file: %w", err)
}

// EnsureExists writes the empty template when the file is missing.
// An existing file is left untouched.
func (s *Store) EnsureExists() (bool, error) {
	ok, err := s.Exists()
	if err != nil || ok {
		return false, err
	}
	if err := s.Save(Template()); err != nil {
		return false, err
	}
	s.logger.Info("created todo file", "path", s.Path)
	return true, nil
}

// Update loads the document, applies fn and saves the result when fn
// reports a change. It returns whether the file was written.
func (s *Store) Update(fn func(*Document) bool) (bool, error) {
	d, err := s.Load()
	if err != nil {
		return false, err
	}
	if !fn(d) {
		return false, nil
	}
	if err := s.Save(d); err != nil {
		return false, err
	}
	return true, nil
}
