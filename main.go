package main

import "github.com/tabqa/tabqa/cmd"

func main() {
	cmd.Execute()
}
