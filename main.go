package main

import "github.com/narasux/perovskite/cmd"

func main() {
	cmd.Execute()
}
