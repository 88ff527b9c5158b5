package dto

type SectionOutput struct {
	Ordinal       int
	Date          string
	Title         string
	ExerciseCount int
}

type ExerciseOutput struct {
	Ordinal int
	Title   string
	File    string
	Assets  []string
}

type SectionDetailOutput struct {
	Ordinal   int
	Date      string
	Title     string
	Exercises []ExerciseOutput
}

type CatalogOutput struct {
	SourceURL string
	Sections  []SectionOutput
}

type ExerciseDetailOutput struct {
	SectionDate  string
	SectionTitle string
	Title        string
	File         string
	Assets       []string
}
