package dto

type RunInput struct {
	Host     string
	BasePath string
	Pattern  string
	DelaySec *int
}

type RunOutput struct {
	RunID   string
	Host    string
	Script  string
	Pattern string
	Dest    string
}

type ProvisionOutput struct {
	RunID  string
	Host   string
	Script string
}

type PushOutput struct {
	RunID   string
	Pattern string
	Dest    string
}
