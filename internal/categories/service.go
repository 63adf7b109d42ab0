package categories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/tally/internal/model"
)

const (
	dirName  = "categories"
	fileName = "categories.csv"
)

// Service provides in-memory lookup over the category catalog.
// Names are matched case-insensitively.
type Service struct {
	categories []model.Category
	byName     map[string]model.Category
}

// NewService creates a Service from a slice of categories.
func NewService(cats []model.Category) *Service {
	byName := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		byName[key(c.Name)] = c
	}
	return &Service{categories: cats, byName: byName}
}

// Load reads categories/categories.csv from a project root.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, dirName, fileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return NewService(cats), nil
}

// All returns all categories.
func (s *Service) All() []model.Category {
	return s.categories
}

// Get returns a category by name.
func (s *Service) Get(name string) (model.Category, bool) {
	c, ok := s.byName[key(name)]
	return c, ok
}

// Exists reports whether a category name exists.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[key(name)]
	return ok
}

// ByKind returns all categories of the given kind.
func (s *Service) ByKind(kind model.Kind) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// Save writes the catalog to categories/categories.csv.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating categories dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.categories); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
