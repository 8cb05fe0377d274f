// Package main provides the puz_shelf HTTP server.
package main

func main() {
	Execute()
}
