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

package main

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func versionString() string {
	ver, sha, buildDate := version, commit, date

	if ver == "dev" || sha == "unknown" || buildDate == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" {
				ver = info.Main.Version
			} else {
				ver = "(devel)"
			}

			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && sha == "unknown" {
					sha = setting.Value
				}

				if setting.Key == "vcs.time" && buildDate == "unknown" {
					buildDate = setting.Value
				}
			}
		}
	}

	return fmt.Sprintf(`sample-rng-plot:
    version: %s
    commit sha: %s
    commit date: %s`, ver, sha, buildDate)
}
