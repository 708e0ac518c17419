package main

import "github.com/0w0mewo/firetv-cli/cmd"

func main() {
	cmd.Execute()
}
