package main

import "github.com/evolbioinfo/pd/cmd"

func main() {
	cmd.Execute()
}
