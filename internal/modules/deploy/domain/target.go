package domain

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// DataSubdirs are created under <base>/data on the course server. The
// submissions directory doubles as the destination of the tutorial push.
var DataSubdirs = []string{"answers", "submissions", "feedback"}

// Target describes one course server deployment: where to connect, where the
// course tree lives, what to push, and how long to wait between the login
// session and the transfer (the login service throttles rapid reconnects).
type Target struct {
	Host     string
	BasePath string
	Pattern  string
	Delay    time.Duration
}

func (t Target) Validate() error {
	if strings.TrimSpace(t.Host) == "" {
		return fmt.Errorf("deploy host is required")
	}
	if strings.TrimSpace(t.BasePath) == "" {
		return fmt.Errorf("deploy base path is required")
	}
	if strings.TrimSpace(t.Pattern) == "" {
		return fmt.Errorf("deploy push pattern is required")
	}
	if t.Delay < 0 {
		return fmt.Errorf("deploy delay must not be negative")
	}
	return nil
}

// ProvisionScript is the single batched script run over the remote shell.
// mkdir -p keeps directory creation idempotent.
func (t Target) ProvisionScript() string {
	dirs := make([]string, 0, len(DataSubdirs))
	for _, dir := range DataSubdirs {
		dirs = append(dirs, path.Join("data", dir))
	}
	return fmt.Sprintf("cd %s && mkdir -p %s", t.BasePath, strings.Join(dirs, " "))
}

// PushDest is the rsync-style destination for the tutorial file push.
func (t Target) PushDest() string {
	return t.Host + ":" + path.Join(t.BasePath, "data", "submissions")
}
