// Package input defines the Action type dispatched to command handlers
// and, in the key subpackage, the keyboard event and chord types the
// keymap layer matches against.
package input
