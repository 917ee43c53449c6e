package model

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type Subject struct {
	Term         int    `mapstructure:"Term" csv:"term" validate:"gte=1"`
	Name         string `mapstructure:"Name" csv:"name" validate:"required"`
	Instructor   string `mapstructure:"Instructor" csv:"instructor"`
	LectureCount int    `mapstructure:"LectureCount" csv:"lecture_count" validate:"gte=1"`
}

// Catalog is the ordered, read-only list of subjects a timetable draws from.
// Slots refer to subjects by their position in the catalog.
type Catalog struct {
	subjects []Subject
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func NewCatalog(subjects []Subject) (*Catalog, error) {
	for i, subject := range subjects {
		if err := validate.Struct(subject); err != nil {
			return nil, fmt.Errorf("invalid subject %d (\"%v\"): %w", i, subject.Name, err)
		}
	}
	return &Catalog{subjects: slices.Clone(subjects)}, nil
}

func (catalog *Catalog) Len() int {
	return len(catalog.subjects)
}

func (catalog *Catalog) Subject(index int) Subject {
	return catalog.subjects[index]
}

// Subjects returns a copy of the catalog's subjects in catalog order
func (catalog *Catalog) Subjects() []Subject {
	return slices.Clone(catalog.subjects)
}

// Terms returns the sorted distinct terms subjects are bound to
func (catalog *Catalog) Terms() []int {
	terms := lo.Uniq(lo.Map(catalog.subjects, func(subject Subject, _ int) int { return subject.Term }))
	slices.Sort(terms)
	return terms
}

// TermSubjects returns the catalog indices of the subjects bound to term, in catalog order
func (catalog *Catalog) TermSubjects(term int) []int {
	indices := make([]int, 0)
	for i, subject := range catalog.subjects {
		if subject.Term == term {
			indices = append(indices, i)
		}
	}
	return indices
}

// TermLoad returns the number of lectures required by all the subjects of term
func (catalog *Catalog) TermLoad(term int) int {
	return lo.SumBy(catalog.subjects, func(subject Subject) int {
		if subject.Term != term {
			return 0
		}
		return subject.LectureCount
	})
}
