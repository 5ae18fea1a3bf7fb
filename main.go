// SPDX-License-Identifier: MPL-2.0

// evm manages named environment variables in a local store.
package main

import cmd "github.com/zxygithub/evm/cmd/evm"

func main() {
	cmd.Execute()
}
