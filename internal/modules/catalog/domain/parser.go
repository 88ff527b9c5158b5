package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const urlPrefix = "URL:"

// FormatError reports a catalog line that matches neither the section, URL,
// nor exercise grammar. The parse stops at the first such line; the format
// makes no provision for recovery.
type FormatError struct {
	Line    int
	Content string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("catalog line %d: %s: %q", e.Line, e.Reason, e.Content)
}

// Parse reads the line-oriented catalog text into a Catalog. Blank lines are
// separators; a `[date title]` line opens a section; a `[URL:...]` line before
// the first section records the document source; every other non-blank line is
// an exercise entry bound to the most recently opened section.
func Parse(r io.Reader) (Catalog, error) {
	var catalog Catalog
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inside := line[1 : len(line)-1]
			if strings.HasPrefix(inside, urlPrefix) {
				if len(catalog.Sections) > 0 {
					return Catalog{}, &FormatError{Line: lineNo, Content: line, Reason: "URL line after first section"}
				}
				catalog.SourceURL = inside[len(urlPrefix):]
				continue
			}
			section, err := parseSectionHeader(inside, lineNo, line)
			if err != nil {
				return Catalog{}, err
			}
			catalog.Sections = append(catalog.Sections, section)
			continue
		}

		if len(catalog.Sections) == 0 {
			return Catalog{}, &FormatError{Line: lineNo, Content: line, Reason: "exercise entry before any section header"}
		}
		exercise, err := parseExerciseLine(line, lineNo)
		if err != nil {
			return Catalog{}, err
		}
		current := &catalog.Sections[len(catalog.Sections)-1]
		current.Exercises = append(current.Exercises, exercise)
	}
	if err := scanner.Err(); err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return catalog, nil
}

func parseSectionHeader(inside string, lineNo int, line string) (Section, error) {
	date, title, ok := strings.Cut(inside, " ")
	if !ok || strings.TrimSpace(title) == "" {
		return Section{}, &FormatError{Line: lineNo, Content: line, Reason: "section header needs a date and a title"}
	}
	section := Section{Date: date, Title: strings.TrimSpace(title)}
	if err := section.Validate(); err != nil {
		return Section{}, &FormatError{Line: lineNo, Content: line, Reason: err.Error()}
	}
	return section, nil
}

// Exercise lines have two or three colon-delimited segments: title, tutorial
// file, and an optional asset file. Anything else is malformed; no truncation
// is guessed for titles containing colons.
func parseExerciseLine(line string, lineNo int) (Exercise, error) {
	parts := strings.Split(line, ":")
	switch len(parts) {
	case 2:
		// <title>:<file>
	case 3:
		// <title>:<file> : <asset>
	default:
		return Exercise{}, &FormatError{Line: lineNo, Content: line, Reason: "exercise entry needs 2 or 3 colon-delimited segments"}
	}

	exercise := Exercise{
		Title: strings.TrimSpace(parts[0]),
		File:  strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		asset := strings.TrimSpace(parts[2])
		if asset == "" {
			return Exercise{}, &FormatError{Line: lineNo, Content: line, Reason: "empty asset segment"}
		}
		exercise.Assets = []string{asset}
	}
	if err := exercise.Validate(); err != nil {
		return Exercise{}, &FormatError{Line: lineNo, Content: line, Reason: err.Error()}
	}
	return exercise, nil
}
