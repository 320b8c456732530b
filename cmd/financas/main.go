package main

import "github.com/dmelo/caixas-go/cmd/financas/commands"

func main() {
	commands.Execute()
}
