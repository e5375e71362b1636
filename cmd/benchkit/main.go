package main

import "benchkit/cmd/benchkit/cmd"

func main() {
	cmd.Execute()
}
