package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"jdex/internal/config"
	"jdex/internal/domain"
)

// Sentinel errors for the distinct failure modes of loading the index.
// Each calls for different guidance: rebuild vs. fix permissions.
var (
	ErrIndexNotFound = errors.New("index file not found")
	ErrIndexEmpty    = errors.New("index file is empty")
)

// MalformedIndexError reports invalid persisted content. The store does
// not attempt partial recovery.
type MalformedIndexError struct {
	Path string
	Err  error
}

func (e *MalformedIndexError) Error() string {
	return fmt.Sprintf("invalid JSON in index file %s: %v", e.Path, e.Err)
}

func (e *MalformedIndexError) Unwrap() error {
	return e.Err
}

// Store persists the index as a JSON file
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: config.ExpandHome(path)}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// persisted file shape: {"areas": {"10-19": {"name": ..., "categories": ...}}}
type indexRecord struct {
	Areas map[string]areaRecord `json:"areas"`
}

type areaRecord struct {
	Name       string                    `json:"name"`
	Categories map[string]categoryRecord `json:"categories"`
}

type categoryRecord struct {
	Name string              `json:"name"`
	IDs  map[string]idRecord `json:"ids"`
}

type idRecord struct {
	Name    string `json:"name"`
	Section bool   `json:"section,omitempty"`
}

// Load reads and deserializes the persisted index. Absent, empty,
// malformed, and unreadable files surface as distinct errors.
func (s *Store) Load() (*domain.Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, s.path)
		}
		return nil, fmt.Errorf("cannot read index file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrIndexEmpty, s.path)
	}

	var record indexRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &MalformedIndexError{Path: s.path, Err: err}
	}

	index := domain.NewIndex()
	for areaCode, a := range record.Areas {
		area := &domain.Area{Code: areaCode, Name: a.Name}
		index.AddArea(area)

		for catCode, c := range a.Categories {
			cat := &domain.Category{Code: catCode, Name: c.Name}
			area.AddCategory(cat)

			for idCode, id := range c.IDs {
				cat.AddID(&domain.ID{Code: idCode, Name: id.Name, Section: id.Section})
			}
		}
	}

	return index, nil
}

// Save serializes the index with sorted keys and writes it atomically
// enough for a single-writer tool: parent dir created on demand,
// full rewrite each time.
func (s *Store) Save(index *domain.Index) error {
	record := indexRecord{Areas: make(map[string]areaRecord)}

	for _, area := range index.Areas() {
		a := areaRecord{Name: area.Name, Categories: make(map[string]categoryRecord)}
		for _, cat := range area.Categories() {
			c := categoryRecord{Name: cat.Name, IDs: make(map[string]idRecord)}
			for _, id := range cat.IDs() {
				c.IDs[id.Code] = idRecord{Name: id.Name, Section: id.Section}
			}
			a.Categories[cat.Code] = c
		}
		record.Areas[area.Code] = a
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize index: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("cannot create index directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("cannot write index file: %w", err)
	}
	return nil
}
