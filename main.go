// SPDX-License-Identifier: MPL-2.0

package main

import cmd "fcaudit-cli/cmd/fcaudit"

func main() {
	cmd.Execute()
}
