package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — received, confirmed
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — sent, pending
	ColorError     = lipgloss.Color("#FF4444") // red    — failed, danger
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan   — addresses, signatures
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — token amounts
	ColorMeta      = lipgloss.Color("#555555") // dim gray   — timestamps, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue  — UI chrome
	ColorNetwork   = lipgloss.Color("#9B5DE5") // purple     — network names
	ColorInfo      = lipgloss.Color("#4CC9F0") // light blue — informational
	ColorHighlight = lipgloss.Color("#F15BB5") // pink       — selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleNetwork = lipgloss.NewStyle().Foreground(ColorNetwork).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorNetwork).
			Bold(true).
			MarginBottom(1)

	StyleDim = lipgloss.NewStyle().Foreground(ColorMeta)
)

// Banner returns the solpay ASCII banner.
func Banner() string {
	art := `
  ███████╗ ██████╗ ██╗     ██████╗  █████╗ ██╗   ██╗
  ██╔════╝██╔═══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝
  ███████╗██║   ██║██║     ██████╔╝███████║ ╚████╔╝
  ╚════██║██║   ██║██║     ██╔═══╝ ██╔══██║  ╚██╔╝
  ███████║╚██████╔╝███████╗██║     ██║  ██║   ██║
  ╚══════╝ ╚═════╝ ╚══════╝╚═╝     ╚═╝  ╚═╝   ╚═╝`

	tagline := StyleMeta.Render("     USDC payments on Solana  ⚡  v1.0.0")
	features := StyleMeta.Render("  ✦ Non-custodial  ✦ Atomic transfers  ✦ History sync")

	return StyleNetwork.Render(art) + "\n" + tagline + "\n" + features + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Info formats an informational message.
func Info(msg string) string { return StyleInfo.Render("ℹ " + msg) }

// Hint formats a follow-up hint.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Addr formats an address or signature.
func Addr(a string) string { return StyleAddress.Render(a) }

// Val formats a token amount.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Network formats a network name.
func Network(n string) string { return StyleNetwork.Render(n) }

// TruncateAddr shortens a base58 address for display: 7xKXtg…gAsU.
func TruncateAddr(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
