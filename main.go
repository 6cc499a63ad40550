package main

import "github.com/caprice1026-disc/AI-TRPG/cmd"

func main() {
	cmd.Execute()
}
