// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/tradelanes/cmd"

func main() {
	cmd.Execute()
}
