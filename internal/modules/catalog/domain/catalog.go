package domain

import (
	"fmt"
	"strings"
)

// Exercise is one tutorial unit: a display title, the tutorial file it refers
// to, and any auxiliary assets (images shown alongside the problem).
type Exercise struct {
	Title  string
	File   string
	Assets []string
}

// Section is a dated grouping of exercises. Order within a section is the
// order the exercises appear in the catalog file.
type Section struct {
	Date      string
	Title     string
	Exercises []Exercise
}

// Catalog is the whole parsed document: the ordered course syllabus. It is
// immutable once parsed; reloading the file produces a fresh value.
type Catalog struct {
	SourceURL string
	Sections  []Section
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("exercise title is required")
	}
	if strings.TrimSpace(e.File) == "" {
		return fmt.Errorf("exercise file is required")
	}
	return nil
}

func (s Section) Validate() error {
	if strings.TrimSpace(s.Date) == "" {
		return fmt.Errorf("section date is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("section title is required")
	}
	return nil
}

// ExerciseCount is the total number of exercises across all sections.
func (c Catalog) ExerciseCount() int {
	n := 0
	for _, section := range c.Sections {
		n += len(section.Exercises)
	}
	return n
}

// FindExercise locates an exercise by its tutorial file name. The bool result
// reports whether it was found.
func (c Catalog) FindExercise(file string) (Section, Exercise, bool) {
	for _, section := range c.Sections {
		for _, exercise := range section.Exercises {
			if exercise.File == file {
				return section, exercise, true
			}
		}
	}
	return Section{}, Exercise{}, false
}
