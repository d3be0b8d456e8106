// Copyright 2025 the sample-rng-plot authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package histplot

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Displayer shows a rendered figure. When blocking, Display returns only
// after the viewer is closed.
type Displayer interface {
	// Check verifies the display dependency is usable, so callers can
	// fail before doing any work.
	Check() error
	Display(ctx context.Context, path string, blocking bool) error
}

// ViewerDisplay opens figures with the platform image viewer.
type ViewerDisplay struct {
	logger *zap.Logger
	// Viewer overrides the platform default binary.
	Viewer string
}

func NewViewerDisplay(logger *zap.Logger) *ViewerDisplay {
	return &ViewerDisplay{logger: logger}
}

func (v *ViewerDisplay) viewer() string {
	if v.Viewer != "" {
		return v.Viewer
	}

	switch runtime.GOOS {
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}

func (v *ViewerDisplay) Check() error {
	_, err := v.resolve()
	return err
}

func (v *ViewerDisplay) resolve() (string, error) {
	name := v.viewer()

	bin, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err,
			"image viewer %q not found; install it or re-run with --no-display", name)
	}

	return bin, nil
}

func (v *ViewerDisplay) Display(ctx context.Context, path string, blocking bool) error {
	bin, err := v.resolve()
	if err != nil {
		return err
	}

	if blocking {
		v.logger.Debug("displaying figure, waiting for viewer to exit",
			zap.String("viewer", bin),
			zap.String("path", path),
		)

		return errors.Wrapf(exec.CommandContext(ctx, bin, path).Run(), "viewer %s failed", bin)
	}

	// The viewer outlives the process in non-blocking mode, so no context.
	cmd := exec.Command(bin, path)
	if err = cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start viewer %s", bin)
	}

	v.logger.Debug("viewer started",
		zap.String("viewer", bin),
		zap.String("path", path),
		zap.Int("pid", cmd.Process.Pid),
	)

	return errors.Wrap(cmd.Process.Release(), "failed to detach viewer")
}
