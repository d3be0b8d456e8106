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

package utils

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

func IgnoreError(fn func() error) {
	_ = fn()
}

// CreateFile opens path for appending, creating it if needed. An empty
// path falls back to def, which lets callers point output at stdout.
func CreateFile(path string, truncate bool, def io.Writer) (io.Writer, error) {
	if path == "" {
		return def, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	return f, nil
}
