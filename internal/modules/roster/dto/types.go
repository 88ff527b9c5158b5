package dto

type UserOutput struct {
	ID       string
	Name     string
	Email    string
	Enrolled string
}

type AddUserInput struct {
	ID       string
	Name     string
	Email    string
	Enrolled string
}

type ListInput struct {
	Query string
	// EnrolFilter narrows to one enrolment state; empty means no filter.
	EnrolFilter string
}
