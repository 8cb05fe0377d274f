// Package main provides the puz2json command line tool.
package main

func main() {
	Execute()
}
