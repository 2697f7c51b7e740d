// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/srcguardproj/srcguard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
