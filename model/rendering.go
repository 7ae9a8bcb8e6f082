package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/go-gol-duel/rules"
)

const (
	gridPosRed   = "\033[31m██\033[0m"
	gridPosBlue  = "\033[34m██\033[0m"
	gridPosEmpty = "\033[90m··\033[0m"

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	// Out defaults to os.Stdout
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the board with a column ruler so players can pick coordinates
func (r *TerminalRenderer) Display(b *Board) {
	w := r.out()

	fmt.Fprint(w, "    ")
	for col := range b.Cols() {
		fmt.Fprintf(w, "%2d", col%100)
	}
	fmt.Fprintln(w)

	for row := range b.Rows() {
		fmt.Fprintf(w, "%3d ", row)
		for col := range b.Cols() {
			switch b.Get(row, col) {
			case rules.Red:
				fmt.Fprint(w, gridPosRed)
			case rules.Blue:
				fmt.Fprint(w, gridPosBlue)
			default:
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
