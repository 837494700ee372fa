package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// confirmIn is the prompt input source, swapped out in tests.
var confirmIn io.Reader = os.Stdin

// ask shows an already-styled prompt, reads one line, and reports whether
// the user answered yes.
func ask(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(confirmIn).ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Confirm prompts before an ordinary action. Returns true for yes.
func Confirm(prompt string) bool {
	return ask(StyleWarning.Render(prompt))
}

// ConfirmDanger prompts before a destructive action.
func ConfirmDanger(prompt string) bool {
	return ask(StyleError.Render("⚠ " + prompt))
}

// ConfirmTransfer prompts for a pending transfer, restating the amount and
// recipient in the prompt itself so the final keystroke is tied to the
// exact values about to be signed.
func ConfirmTransfer(amount, symbol, recipient string) bool {
	return ask(StyleWarning.Render("Send ") +
		StyleValue.Render(amount+" "+symbol) +
		StyleWarning.Render(" to ") +
		StyleAddress.Render(TruncateAddr(recipient)) +
		StyleWarning.Render("?"))
}
