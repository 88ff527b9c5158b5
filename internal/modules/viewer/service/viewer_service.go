package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mpt/internal/modules/viewer/domain"
	"mpt/internal/modules/viewer/dto"
	viewerout "mpt/internal/modules/viewer/port/out"
	apperrors "mpt/internal/platform/errors"
)

type ViewerService struct {
	store   viewerout.ManifestStore
	host    viewerout.Host
	content viewerout.ContentStore
}

func NewViewerService(store viewerout.ManifestStore, host viewerout.Host, content viewerout.ContentStore) *ViewerService {
	return &ViewerService{store: store, host: host, content: content}
}

func (s *ViewerService) List(ctx context.Context) ([]dto.ViewerInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ViewerInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.ViewerInfo{
			Name:    m.Name,
			Version: m.Version,
			Binary:  m.Binary,
			Enabled: m.Enabled,
			Formats: m.Formats,
		})
	}
	return out, nil
}

// Doctor checks every manifest without refusing to report broken ones.
func (s *ViewerService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ViewerService) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	manifest, err := s.getRunnableManifest(ctx, input.Viewer)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	if !manifest.SupportsFile(input.File) {
		return dto.RenderOutput{}, fmt.Errorf("%w: %s", domain.ErrFormatUnsupported, filepath.Ext(input.File))
	}

	content, err := s.content.Read(ctx, input.File)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	req := domain.RenderRequest{File: input.File, Content: content, Width: input.Width}
	if err := req.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}

	result, err := s.host.Render(ctx, manifest, req)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	return dto.RenderOutput{
		Viewer:   input.Viewer,
		File:     input.File,
		Rendered: result.Rendered,
		Warnings: result.Warnings,
	}, nil
}

func (s *ViewerService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate viewer name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *ViewerService) getRunnableManifest(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == name {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("viewer %q: %w", name, apperrors.ErrNotFound)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrViewerDisabled, name)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrViewerTimeout, name)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read viewer binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
