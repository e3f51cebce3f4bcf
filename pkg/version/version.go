// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the build version of tempera.
var Version = "0.1.0"
