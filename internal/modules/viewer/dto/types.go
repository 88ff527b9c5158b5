package dto

type ViewerInfo struct {
	Name    string
	Version string
	Binary  string
	Enabled bool
	Formats []string
}

type DoctorResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type RenderInput struct {
	Viewer string
	File   string
	Width  int
}

type RenderOutput struct {
	Viewer   string
	File     string
	Rendered string
	Warnings []string
}
