package main

import "github.com/BoostMeHQ/boostme-cli/cmd"

func main() {
	cmd.Execute()
}
