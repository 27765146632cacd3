package main

import "github.com/josephlewis42/run/cmd"

func main() {
	cmd.Execute()
}
