// Package cli routes the todoterm subcommands. With no subcommand the
// interactive TUI starts; `auth` manages the stored session outside the TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todoterm/internal/api"
	"todoterm/internal/config"
	"todoterm/internal/logging"
	"todoterm/internal/picker"
	"todoterm/internal/session"
	"todoterm/internal/todo"
	"todoterm/internal/ui"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func ok(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

// Run dispatches args and returns the process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		return runTUI()
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "tui":
		return runTUI()

	case "auth":
		if len(a) != 1 {
			fail("usage: todoterm auth <status|logout>")
			return 2
		}
		switch a[0] {
		case "status":
			return doAuthStatus()
		case "logout":
			return doAuthLogout()
		default:
			fail("usage: todoterm auth <status|logout>")
			return 2
		}
	}

	fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todoterm - a terminal todo client

Usage:
  todoterm [subcommand]

Subcommands:
  (none), tui        Start the interactive client
  auth status        Show whether a session token is stored
  auth logout        Clear the stored session token
  help               Show this help

Environment:
  TODOTERM_API_BASE_URL   Backend base URL (default http://localhost:8080)
  TODOTERM_CONFIG_DIR     Credential + log directory (default ~/.todoterm)
  TODOTERM_LOG_LEVEL      Log level (default info)
`)
}

func runTUI() int {
	cfg, err := config.LoadClient()
	if err != nil {
		fail("config: " + err.Error())
		return 1
	}
	logger, logFile, err := logging.NewFileLogger(cfg.ConfigDir, cfg.LogLevel)
	if err != nil {
		fail("logging: " + err.Error())
		return 1
	}
	defer logFile.Close()

	creds := session.NewFileStore(cfg.ConfigDir)
	client := api.NewClient(cfg.APIBaseURL, creds, logger)

	app := ui.NewApp(ui.Deps{
		Repo:        todo.NewRepository(client, logger),
		Auth:        client,
		Resolver:    session.NewResolver(creds, logger),
		DatePicker:  picker.FieldDatePicker{},
		ImagePicker: picker.FileImagePicker{},
		Log:         logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doAuthStatus() int {
	cfg, err := config.LoadClient()
	if err != nil {
		fail("config: " + err.Error())
		return 1
	}
	creds := session.NewFileStore(cfg.ConfigDir)
	token, err := creds.Get(context.Background(), session.TokenKey)
	if err != nil {
		fail("read credentials: " + err.Error())
		return 1
	}
	if strings.TrimSpace(token) == "" {
		fmt.Println(mutedStyle.Render("not signed in"))
		fmt.Println("Start the TUI and sign in.")
		return 0
	}
	ok("session token stored")
	return 0
}

func doAuthLogout() int {
	cfg, err := config.LoadClient()
	if err != nil {
		fail("config: " + err.Error())
		return 1
	}
	creds := session.NewFileStore(cfg.ConfigDir)
	if err := creds.Clear(context.Background(), session.TokenKey); err != nil {
		fail("logout: " + err.Error())
		return 1
	}
	ok("signed out")
	return 0
}
