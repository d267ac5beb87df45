// SPDX-License-Identifier: MPL-2.0

package main

import cmd "rund/cmd/rund"

func main() {
	cmd.Execute()
}
