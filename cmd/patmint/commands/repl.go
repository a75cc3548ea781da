package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sbvh/patmint/config"
	"github.com/sbvh/patmint/entropy"
	"github.com/sbvh/patmint/logger"
	"github.com/sbvh/patmint/pat"
	"github.com/sbvh/patmint/sym"
)

// ReplCmd represents the repl (interactive loop) command
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: sym.Repl + " Interactive pattern loop",
	Long: sym.Repl + ` repl — Interactive pattern loop

Reads one pattern per line, compiles it, and prints the expression it
lowered to followed by the minted string. A syntax fault prints a caret
under the offending index and the next line starts a fresh turn.

Commands inside the loop:
  :source on|off   toggle echoing the compiled expression
  :history         show patterns entered this session
  exit             leave the loop (Ctrl-D also works)`,
	RunE: runRepl,
}

// replSession holds the per-session state of the interactive loop
type replSession struct {
	mu         sync.Mutex
	cfg        *config.Config
	showSource bool
	history    []string
	src        entropy.Source
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	session := &replSession{
		cfg:        cfg,
		showSource: cfg.Output.ShowSource,
		src:        entropy.Crypto{},
	}

	// Live-reload the session config when the user config file changes
	if watcher := startConfigWatcher(session); watcher != nil {
		defer watcher.Stop()
	}

	pterm.FgGray.Println("patmint repl — one pattern per line, 'exit' or Ctrl-D to quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(session.prompt())
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if strings.HasPrefix(line, ":") {
			session.handleCommand(line)
			continue
		}

		session.remember(line)
		session.turn(line)
	}

	return scanner.Err()
}

// turn runs one compile-and-run cycle and prints the result
func (s *replSession) turn(pattern string) {
	result := pat.CompileAndRun(pattern, s.src)
	if !result.OK {
		// The pattern sits on the prompt line, so pad the caret by the
		// prompt width to keep it under the offending index.
		idx := strings.Index(result.Output, "\n")
		if idx < 0 {
			fmt.Fprintln(os.Stderr, pterm.FgRed.Sprint(sym.Fail+" "+result.Output))
			return
		}
		caret, msg := result.Output[:idx], result.Output[idx+1:]
		fmt.Fprintln(os.Stderr, strings.Repeat(" ", len([]rune(s.prompt())))+caret)
		fmt.Fprintln(os.Stderr, pterm.FgRed.Sprint(sym.Fail+" "+msg))
		return
	}

	s.mu.Lock()
	show := s.showSource
	s.mu.Unlock()

	if show {
		pterm.FgGray.Println(sym.Pat + " " + result.Source)
	}
	fmt.Println(sym.Mint + " " + result.Output)
}

// handleCommand dispatches colon-prefixed session commands
func (s *replSession) handleCommand(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":source":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			fmt.Println("usage: :source on|off")
			return
		}
		s.mu.Lock()
		s.showSource = fields[1] == "on"
		s.mu.Unlock()
		fmt.Printf("%s source echo %s\n", sym.OK, fields[1])

	case ":history":
		s.mu.Lock()
		history := make([]string, len(s.history))
		copy(history, s.history)
		s.mu.Unlock()
		for i, entry := range history {
			fmt.Printf("%3d  %s\n", i+1, entry)
		}

	default:
		fmt.Printf("unknown command %q (try :source, :history)\n", fields[0])
	}
}

// remember appends a pattern to session history, trimming to the limit
func (s *replSession) remember(pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, pattern)
	if limit := s.cfg.GetHistoryLimit(); len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

func (s *replSession) prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.GetPrompt()
}

// startConfigWatcher wires a config file watcher into the session so theme,
// prompt, and source-echo changes take effect without restarting the loop.
// Returns nil when the user config file does not exist yet.
func startConfigWatcher(session *replSession) *config.ConfigWatcher {
	configPath := config.UserConfigPath()
	if configPath == "" {
		return nil
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}

	watcher, err := config.NewConfigWatcher(configPath)
	if err != nil {
		logger.Warnw("Config watcher unavailable", "error", err)
		return nil
	}

	watcher.OnReload(func(newCfg *config.Config) error {
		session.mu.Lock()
		session.cfg = newCfg
		session.showSource = newCfg.Output.ShowSource
		session.mu.Unlock()
		logger.SetTheme(newCfg.GetTheme())
		return nil
	})

	config.SetGlobalWatcher(watcher)
	watcher.Start()
	return watcher
}
