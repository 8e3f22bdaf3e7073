// Package game provides the interactive, turn-based play mode as a
// bubbletea model.
//
// The player fills a loaded puzzle one command at a time using the 1-based
// grammar of the console original:
//
//	i,j=v   enter v at position (i,j)
//	i,j=0   clear cell (i,j)
//	0,0=0   save and end the game
//
// Every assignment goes through the validated grid.Snapshot path, so fixed
// clues, out-of-range values and row or column duplicates are refused with
// a status-line explanation instead of mutating the board. The game ends
// when the board completes (a win, saved automatically), when the player
// saves explicitly, or on esc/ctrl+c, which quits without saving.
//
// The model follows the Elm shape: New builds it, Update consumes key
// messages, View renders the board with fixed clues in parentheses. All
// state lives in the model; the packages below stay free of terminal
// concerns.
package game
