package main

import "github.com/agentic-research/pathgraph/cmd"

func main() {
	cmd.Execute()
}
