package main

import "github.com/finchline/finchline/cmd"

func main() {
	cmd.Execute()
}
