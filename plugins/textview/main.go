package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-plugin"

	"mpt/internal/modules/viewer/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *rpc.Empty) (*rpc.Metadata, error) {
	return &rpc.Metadata{
		Name:    "textview",
		Version: "1.0.0",
		Formats: []string{".tut"},
	}, nil
}

// Render wraps the tutorial text to the requested width and prefixes each
// line with a gutter. Deliberately plain; textview exists so the host side
// has a working viewer to talk to.
func (s *server) Render(_ context.Context, in *rpc.RenderRequest) (*rpc.RenderResponse, error) {
	if !strings.HasSuffix(strings.ToLower(in.File), ".tut") {
		return nil, fmt.Errorf("unsupported file: %s", in.File)
	}

	width := int(in.Width)
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	var warnings []string
	for _, line := range strings.Split(in.Content, "\n") {
		if len(line) > width {
			warnings = append(warnings, fmt.Sprintf("line longer than %d columns was wrapped", width))
		}
		for len(line) > width {
			b.WriteString("| " + line[:width] + "\n")
			line = line[width:]
		}
		b.WriteString("| " + line + "\n")
	}
	return &rpc.RenderResponse{Rendered: b.String(), Warnings: warnings}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rpc.HandshakeConfig,
		Plugins:         rpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
