// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jmarzano/fracset/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
