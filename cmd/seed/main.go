// Package main provides the seed tool that bulk-imports .puz files.
package main

func main() {
	Execute()
}
