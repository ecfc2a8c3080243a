package main

import "github.com/mcstats/mcstats/internal/cmd"

func main() {
	cmd.Execute()
}
