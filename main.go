package main

import (
	"genome_buddy_go/cmd"
)

// Main controller
func main() {
	cmd.Execute() // initialize cobra commands
}
