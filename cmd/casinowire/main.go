package main

import "github.com/solcasino/casinowire/cmd/casinowire/cmd"

func main() {
	cmd.Execute()
}
