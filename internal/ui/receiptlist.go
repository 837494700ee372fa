package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ReceiptRow holds per-receipt data needed for interactivity.
type ReceiptRow struct {
	Signature   string // full base58 signature (for copy)
	ExplorerURL string // e.g. https://solscan.io/tx/...
	Note        string // shown in the detail line when selected
}

// receiptListModel is the bubbletea model for the interactive history table.
type receiptListModel struct {
	title    string
	table    *Table
	receipts []ReceiptRow // parallel to table.Rows
	cursor   int
	flash    string // brief feedback shown in hint bar
}

func (m receiptListModel) Init() tea.Cmd { return nil }

func (m receiptListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.table.Rows)-1 {
				m.cursor++
			}

		case "o":
			if m.cursor < len(m.receipts) {
				url := m.receipts[m.cursor].ExplorerURL
				if url != "" {
					openBrowser(url)
					m.flash = "Opening in browser…"
				} else {
					m.flash = "No explorer URL (transaction never reached the chain)"
				}
			}

		case "c":
			if m.cursor < len(m.receipts) {
				sig := m.receipts[m.cursor].Signature
				if sig == "" {
					m.flash = "No signature available"
					break
				}
				if err := copyToClipboard(sig); err == nil {
					m.flash = "Copied: " + TruncateAddr(sig)
				} else {
					m.flash = "Copy failed: " + err.Error()
				}
			}
		}
	}
	return m, nil
}

func (m receiptListModel) View() string {
	m.table.SelIdx = m.cursor

	var sb strings.Builder

	sb.WriteString(m.title)
	sb.WriteString("\n\n")

	sb.WriteString(m.table.Render())

	// Detail line for the selected receipt's note, if any.
	if m.cursor < len(m.receipts) && m.receipts[m.cursor].Note != "" {
		sb.WriteString("\n")
		sb.WriteString(StyleMeta.Render("  note: ") + StyleValue.Render(m.receipts[m.cursor].Note))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.flash != "" {
		sb.WriteString(StyleSuccess.Render("  ✓ " + m.flash))
	} else {
		sb.WriteString(receiptControls())
	}
	sb.WriteString("\n")

	return sb.String()
}

// receiptControls renders the consistent bottom control bar.
func receiptControls() string {
	sep := StyleMeta.Render("   ")
	var sb strings.Builder
	sb.WriteString(StyleMeta.Render("[ ↑↓ ]"))
	sb.WriteString(StyleMeta.Render(" navigate"))
	sb.WriteString(sep)
	sb.WriteString(StyleInfo.Render("[ o ]"))
	sb.WriteString(StyleMeta.Render(" open in explorer"))
	sb.WriteString(sep)
	sb.WriteString(StyleWarning.Render("[ c ]"))
	sb.WriteString(StyleMeta.Render(" copy signature"))
	sb.WriteString(sep)
	sb.WriteString(StyleMeta.Render("[ q ]"))
	sb.WriteString(StyleMeta.Render(" quit"))
	return sb.String()
}

// RunReceiptList starts the interactive history view. Blocks until the user
// presses q/ESC. Uses the alt screen so the terminal is restored on exit.
func RunReceiptList(title string, table *Table, receipts []ReceiptRow) error {
	m := receiptListModel{
		title:    title,
		table:    table,
		receipts: receipts,
	}
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// openBrowser opens url in the OS default browser.
func openBrowser(url string) {
	var name string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "cmd"
	default:
		name = "xdg-open"
	}
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command(name, "/c", "start", url)
	} else {
		cmd = exec.Command(name, url)
	}
	_ = cmd.Start()
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("clip")
	default:
		// Try wl-copy (Wayland), fall back to xclip.
		if _, err := exec.LookPath("wl-copy"); err == nil {
			cmd = exec.Command("wl-copy")
		} else {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		}
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	_, _ = io.WriteString(stdin, text)
	stdin.Close()
	return cmd.Wait()
}
