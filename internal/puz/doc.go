// Package puz decodes Across Lite .puz crossword containers.
//
// Decode is a pure function over the container bytes: it reads the header,
// reconstructs the solution grid, numbers it, extracts the metadata and clue
// strings and, when present, the rebus and circle extensions. Every call owns
// its working state, so independent buffers may be decoded concurrently.
package puz
