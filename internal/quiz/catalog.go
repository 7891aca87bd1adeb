package quiz

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

var (
	ErrEmptyCatalog      = errors.New("question catalog is empty")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrIncompleteCard    = errors.New("question is missing a prompt or an answer")
)

// Catalog is the fixed set of flashcards a campaign draws from.
type Catalog struct {
	questions []entity.Question
}

type bankFile struct {
	Questions []entity.Question `yaml:"questions" json:"questions"`
}

func DefaultCatalog() *Catalog {
	return &Catalog{questions: append([]entity.Question(nil), defaultQuestions...)}
}

func NewCatalog(questions []entity.Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if q.English == "" || q.German == "" {
			return nil, fmt.Errorf("%w: %q", ErrIncompleteCard, q.ID)
		}

		if _, ok := seen[q.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateQuestion, q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	return &Catalog{questions: append([]entity.Question(nil), questions...)}, nil
}

// LoadCatalog reads a YAML (or JSON) question bank. An empty path selects the built-in deck.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	var bank bankFile
	if err := cleanenv.ReadConfig(path, &bank); err != nil {
		return nil, fmt.Errorf("unable to read question bank %s: %w", path, err)
	}

	catalog, err := NewCatalog(bank.Questions)
	if err != nil {
		return nil, fmt.Errorf("invalid question bank %s: %w", path, err)
	}

	return catalog, nil
}

func (that *Catalog) Len() int {
	return len(that.questions)
}

// Questions returns a copy of the deck in catalog order.
func (that *Catalog) Questions() []entity.Question {
	return append([]entity.Question(nil), that.questions...)
}
