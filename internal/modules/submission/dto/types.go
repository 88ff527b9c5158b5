package dto

import "time"

type SubmitInput struct {
	User string
	Hash string
	Code string
}

type SubmitOutput struct {
	User string
	Hash string
	Date time.Time
}

type SubmissionOutput struct {
	Hash      string
	Date      time.Time
	AllowLate bool
}

type StatusOutput struct {
	Hash       string
	ProblemSet string
	Tutorial   string
	Due        time.Time
	Status     string
}

type AnswerInput struct {
	User       string
	Package    string
	ProblemSet string
	Tutorial   string
}

type AnswerOutput struct {
	Code    string
	Hash    string
	ModTime time.Time
}
