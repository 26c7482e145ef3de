package main

import "github.com/zos-apps/assistant/internal/commands"

func main() {
	commands.Execute()
}
