// Package terminal is the character-grid front end of the snake game: a
// differential ANSI renderer, the raw-mode session, stdin key decoding and the
// fixed-sleep real-time loop.
package terminal
