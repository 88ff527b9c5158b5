package out

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"

	deployout "mpt/internal/modules/deploy/port/out"
	apperrors "mpt/internal/platform/errors"
)

// RsyncFileSyncer pushes files with `rsync -az`: archive mode preserves
// permissions and times, compression suits the tutorial text files. No
// --delete; the remote side only ever gains files.
type RsyncFileSyncer struct {
	localDir string
}

func NewRsyncFileSyncer(localDir string) deployout.FileSyncer {
	return &RsyncFileSyncer{localDir: localDir}
}

func (s *RsyncFileSyncer) Push(ctx context.Context, pattern, dest string) error {
	matches, err := filepath.Glob(filepath.Join(s.localDir, pattern))
	if err != nil {
		return fmt.Errorf("%w: bad pattern %q: %v", apperrors.ErrTransfer, pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: no local files match %q", apperrors.ErrTransfer, pattern)
	}
	sort.Strings(matches)

	args := append([]string{"-az"}, matches...)
	args = append(args, dest)
	cmd := exec.CommandContext(ctx, "rsync", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: rsync to %s: %v: %s", apperrors.ErrTransfer, dest, err, bytes.TrimSpace(output))
	}
	return nil
}
