package main

import "github.com/kamal-hamza/gallery-cli/cmd"

func main() {
	cmd.Execute()
}
