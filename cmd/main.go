package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Akashdeep-Patra/zed-dir-view/internal/app"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/common"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/config"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/dirfs"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/nav"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/ui/views"
	"github.com/Akashdeep-Patra/zed-dir-view/internal/watcher"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI file browser spends almost all its time waiting for terminal
	// input; 2 OS threads cover the render + dispatch work even with several
	// instances open across editor terminals. If the user explicitly sets
	// GOMAXPROCS, we respect that.
	if os.Getenv("GOMAXPROCS") == "" {
		maxProcs := 2
		if n := runtime.NumCPU(); n < maxProcs {
			maxProcs = n
		}
		runtime.GOMAXPROCS(maxProcs)
	}

	// Keep RSS low when many editor panes each run an instance.
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zdv",
		Short: "A keyboard-first directory navigator for Zed IDE",
		Long: `zdv is a keyboard-first, terminal-based directory navigator designed
to run inside Zed's integrated terminal (or any terminal emulator).

It shows one directory per screen: enter a subdirectory to replace the
listing, go back up and land on the directory you came from, and open
files in your editor — cursor positions are remembered across the whole
session.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"zdv %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())
	rootCmd.AddCommand(buildZedCmd())

	rootCmd.Flags().StringP("path", "p", ".", "Directory to start browsing in")

	return rootCmd
}

type zedTask struct {
	Label               string            `json:"label"`
	Command             string            `json:"command"`
	Args                []string          `json:"args,omitempty"`
	Env                 map[string]string `json:"env,omitempty"`
	Cwd                 string            `json:"cwd,omitempty"`
	UseNewTerminal      bool              `json:"use_new_terminal,omitempty"`
	AllowConcurrentRuns bool              `json:"allow_concurrent_runs,omitempty"`
	Reveal              string            `json:"reveal,omitempty"`
	Hide                string            `json:"hide,omitempty"`
	Shell               string            `json:"shell,omitempty"`
	ShowSummary         bool              `json:"show_summary,omitempty"`
	ShowCommand         bool              `json:"show_command,omitempty"`
}

const zedLabelPrefix = "zdv:"

func buildZedCmd() *cobra.Command {
	zedCmd := &cobra.Command{
		Use:   "zed",
		Short: "Manage Zed IDE integration",
		Long: `Manage global Zed tasks for zdv.

Examples:
  zdv zed status
  zdv zed install
  zdv zed uninstall`,
	}

	zedCmd.AddCommand(buildZedInstallCmd())
	zedCmd.AddCommand(buildZedUninstallCmd())
	zedCmd.AddCommand(buildZedStatusCmd())

	return zedCmd
}

func buildZedInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install global Zed tasks for zdv",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfgDir, err := zedConfigDir()
			if err != nil {
				return err
			}
			tasksPath := filepath.Join(cfgDir, "tasks.json")

			existing, err := readZedTasks(tasksPath)
			if err != nil {
				return err
			}

			merged := mergeZedTasks(existing, defaultZedTasks())
			if err := writeZedTasks(tasksPath, merged); err != nil {
				return err
			}

			fmt.Printf("Installed zdv Zed integration at %s\n", tasksPath)
			fmt.Println("Open Zed and run: task: spawn -> zdv:*")
			return nil
		},
	}
}

func buildZedUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove global Zed tasks managed by zdv",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfgDir, err := zedConfigDir()
			if err != nil {
				return err
			}
			tasksPath := filepath.Join(cfgDir, "tasks.json")

			existing, err := readZedTasks(tasksPath)
			if err != nil {
				return err
			}
			cleaned := removeManagedZedTasks(existing)

			if err := writeZedTasks(tasksPath, cleaned); err != nil {
				return err
			}
			fmt.Printf("Removed zdv Zed integration from %s\n", tasksPath)
			return nil
		},
	}
}

func buildZedStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show global Zed integration status",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfgDir, err := zedConfigDir()
			if err != nil {
				return err
			}
			tasksPath := filepath.Join(cfgDir, "tasks.json")

			existing, err := readZedTasks(tasksPath)
			if err != nil {
				return err
			}

			var labels []string
			for _, t := range existing {
				if strings.HasPrefix(t.Label, zedLabelPrefix) {
					labels = append(labels, t.Label)
				}
			}

			fmt.Printf("Zed tasks file: %s\n", tasksPath)
			if len(labels) == 0 {
				fmt.Println("zdv integration: not installed")
				return nil
			}

			fmt.Printf("zdv integration: installed (%d task(s))\n", len(labels))
			for _, label := range labels {
				fmt.Printf("  - %s\n", label)
			}
			return nil
		},
	}
}

func zedConfigDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv("ZDV_ZED_CONFIG_DIR")); override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home dir: %w", err)
	}

	xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if xdg != "" {
		return filepath.Join(xdg, "zed"), nil
	}

	return filepath.Join(home, ".config", "zed"), nil
}

func readZedTasks(path string) ([]zedTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read zed tasks file %s: %w", path, err)
	}

	var tasks []zedTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse zed tasks file %s: %w", path, err)
	}
	return tasks, nil
}

func writeZedTasks(path string, tasks []zedTask) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create zed config dir: %w", err)
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize zed tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write zed tasks file %s: %w", path, err)
	}
	return nil
}

func mergeZedTasks(existing, managed []zedTask) []zedTask {
	cleaned := removeManagedZedTasks(existing)
	return append(cleaned, managed...)
}

func removeManagedZedTasks(tasks []zedTask) []zedTask {
	out := make([]zedTask, 0, len(tasks))
	for _, t := range tasks {
		if strings.HasPrefix(t.Label, zedLabelPrefix) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func defaultZedTasks() []zedTask {
	return []zedTask{
		{
			Label:               "zdv: browse worktree",
			Command:             "zdv",
			Args:                []string{"--path", "$ZED_WORKTREE_ROOT"},
			Cwd:                 "$ZED_WORKTREE_ROOT",
			UseNewTerminal:      true,
			AllowConcurrentRuns: false,
			Reveal:              "always",
			Hide:                "never",
			Shell:               "system",
			ShowSummary:         true,
			ShowCommand:         true,
		},
		{
			Label:               "zdv: browse current file's directory",
			Command:             "zdv",
			Args:                []string{"--path", "$ZED_DIRNAME"},
			Cwd:                 "$ZED_WORKTREE_ROOT",
			UseNewTerminal:      true,
			AllowConcurrentRuns: true,
			Reveal:              "always",
			Hide:                "never",
			Shell:               "system",
			ShowSummary:         true,
			ShowCommand:         true,
		},
	}
}

// buildVersionCmd creates the `zdv version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("zdv %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `zdv completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for zdv.

Examples:
  # Bash (add to ~/.bashrc)
  zdv completion bash > /etc/bash_completion.d/zdv

  # Zsh (add to ~/.zshrc before compinit)
  zdv completion zsh > "${fpath[1]}/_zdv"

  # Fish
  zdv completion fish > ~/.config/fish/completions/zdv.fish

  # PowerShell
  zdv completion powershell > zdv.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	startPath, _ := cmd.Flags().GetString("path")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fsys := dirfs.OSFS{}
	navigator, err := nav.New(fsys, startPath, cfg.ShowHiddenFiles)
	if err != nil {
		return fmt.Errorf("opening directory: %w", err)
	}

	styles := ui.StylesForTheme(cfg.Theme)
	browser := views.NewBrowser(navigator, styles, config.DefaultKeyBindings())

	// The watcher keeps the listing fresh while zdv sits idle in an editor
	// pane. Failure is non-fatal: the user can still refresh with 'r'.
	w, werr := watcher.New(navigator.Path(), 500*time.Millisecond)

	var retarget app.Retargeter
	if werr == nil {
		retarget = w
		defer w.Close()
	}

	model := app.New(cfg, browser, retarget)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if werr == nil {
		go func() {
			for range w.Events() {
				p.Send(common.RefreshMsg{})
			}
		}()
	}

	_, err = p.Run()
	return err
}
