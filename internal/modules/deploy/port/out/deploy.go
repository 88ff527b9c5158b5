package out

import (
	"context"
	"time"
)

// RemoteShell runs one batched script on a remote host over a login session.
type RemoteShell interface {
	Run(ctx context.Context, host, script string) error
}

// FileSyncer pushes local files matching pattern to dest. The push is
// one-directional and additive: remote files absent locally are never deleted.
type FileSyncer interface {
	Push(ctx context.Context, pattern, dest string) error
}

// Sleeper waits out the fixed inter-step delay.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
