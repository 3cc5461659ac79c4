package main

import "github.com/jsphweid/beatgrid/cmd"

func main() {
	cmd.Execute()
}
