package main

import "github.com/llvmconf/llvmconf/cmd/llvmconf/internal"

func main() {
	internal.Execute()
}
