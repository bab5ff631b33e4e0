// Package rules owns the persisted category->keyword ruleset: loading and
// saving it as a whole, and the mutations that grow it (explicit category
// creation and keyword learning from user corrections).
package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ledgerloom-dev/ledgerloom/internal/model"
)

// Sentinel errors for invalid category operations.
var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDuplicateCategory = errors.New("category already exists")
)

// StoreError reports that the ruleset file could not be read or written.
type StoreError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ruleset %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Service owns a ruleset and its backing file. Every mutation is persisted
// before it returns. Not safe for concurrent use; the engine assumes a
// single active session.
type Service struct {
	path    string
	ruleset model.Ruleset
}

// Load reads the ruleset at path, or returns a Service holding the default
// ruleset if the file does not exist. A file that exists but cannot be read
// or parsed is a *StoreError: silently falling back would discard the user's
// accumulated rules on the next save.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Service{path: path, ruleset: model.DefaultRuleset()}, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}

	var rs model.Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	if !rs.Has(model.Uncategorized) {
		return nil, &StoreError{Op: "load", Err: fmt.Errorf("missing reserved category %q", model.Uncategorized)}
	}
	return &Service{path: path, ruleset: rs}, nil
}

// Save persists the full ruleset, overwriting any prior state.
func (s *Service) Save() error {
	data, err := yaml.Marshal(s.ruleset)
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

// Ruleset returns a copy of the current ruleset.
func (s *Service) Ruleset() model.Ruleset {
	return s.ruleset.Clone()
}

// Keywords returns the keyword list for a category.
func (s *Service) Keywords(name string) ([]string, error) {
	c, ok := s.ruleset.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	kws := make([]string, len(c.Keywords))
	copy(kws, c.Keywords)
	return kws, nil
}

// Learn folds a transaction description into a category's keyword list and
// persists the result. Returns true if the ruleset changed. Blank keywords
// and keywords already present (exact match) are no-ops.
func (s *Service) Learn(category, keyword string) (bool, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false, nil
	}

	idx := -1
	for i, c := range s.ruleset.Categories {
		if c.Name == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	for _, existing := range s.ruleset.Categories[idx].Keywords {
		if existing == keyword {
			return false, nil
		}
	}

	s.ruleset.Categories[idx].Keywords = append(s.ruleset.Categories[idx].Keywords, keyword)
	if err := s.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// CreateCategory adds a new empty category and persists the result.
func (s *Service) CreateCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if s.ruleset.Has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}

	s.ruleset.Categories = append(s.ruleset.Categories, model.Category{Name: name, Keywords: []string{}})
	return s.Save()
}
