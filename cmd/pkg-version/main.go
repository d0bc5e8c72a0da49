package main

import "github.com/oshokin/pkg-version/cmd/pkg-version/cmd"

func main() {
	cmd.Execute()
}
