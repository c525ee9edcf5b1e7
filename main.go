package main

import "github.com/Kappamalone/dynarmic/cmd"

func main() {
	cmd.Execute()
}
