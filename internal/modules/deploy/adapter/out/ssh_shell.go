package out

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	deployout "mpt/internal/modules/deploy/port/out"
	apperrors "mpt/internal/platform/errors"
)

// SSHRemoteShell batches a script into a single ssh invocation, one login
// session per call. BatchMode keeps a missing key from degrading into an
// interactive password prompt.
type SSHRemoteShell struct{}

func NewSSHRemoteShell() deployout.RemoteShell {
	return &SSHRemoteShell{}
}

func (*SSHRemoteShell) Run(ctx context.Context, host, script string) error {
	cmd := exec.CommandContext(ctx, "ssh", "-o", "BatchMode=yes", host, script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ssh %s: %v: %s", apperrors.ErrConnection, host, err, bytes.TrimSpace(output))
	}
	return nil
}
