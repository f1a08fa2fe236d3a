package main

import "github.com/kubev2v/filter-clauses/cmd"

func main() {
	cmd.Execute()
}
