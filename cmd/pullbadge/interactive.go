package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jpalmerr/pullbadge"
	"github.com/jpalmerr/pullbadge/config"
	"github.com/jpalmerr/pullbadge/internal/form"
	"github.com/jpalmerr/pullbadge/internal/output"
	"github.com/jpalmerr/pullbadge/internal/store"
	"github.com/spf13/cobra"
)

const interactiveHelp = `Commands:
  repo <url>       enter the GitHub repository URL
  load             load the package list
  select <name>    pick a package from the list
  package <name>   type a package name
  label <text>     badge label
  logo <id>        simple-icons logo, or none
  color <token>    badge color, or default
  style <token>    badge style (flat, flat-square, plastic, for-the-badge, social)
  copy <field>     copy json-url, json-markdown, json-html, direct-url or direct-markdown
  show             print the whole form
  help             print this help
  quit             exit`

// interactiveCmd runs the step-by-step badge form on the terminal.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a badge step by step",
	Long: `Run the badge form on the terminal.

Commands are read one per line from stdin. Each step reveals the next: enter
a repository, load its packages, adjust the badge, then copy a snippet.
Copies use the OSC 52 terminal escape, which also works over SSH.

` + interactiveHelp,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	f := interactiveCmd.Flags()
	f.StringP("repo", "r", "", "prefill the repository URL")
	f.Bool("from-git", false, "prefill the repository URL from the origin remote")
	f.String("dir", ".", "directory searched for a git repository with --from-git")
	f.StringP("config", "c", "", "path to config file")
	f.Bool("no-animate", false, "reveal sections without the staggered delay")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	builder, err := pullbadge.New(config.BuildOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	repoURL, err := repositoryURL(cmd)
	if err != nil {
		return err
	}

	w := output.NewWriter(cmd.OutOrStdout(), noColor(cmd))
	sleep := time.Sleep
	if noAnimate, _ := cmd.Flags().GetBool("no-animate"); noAnimate {
		sleep = nil
	}
	renderer := output.NewRenderer(w, sleep)

	st := store.NewMemoryStore()
	ch := st.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		renderer.Run(ch)
	}()

	f := form.New(form.Config{
		Builder:   builder,
		Store:     st,
		Clipboard: pullbadge.NewOSC52Clipboard(cmd.ErrOrStderr(), detectMultiplexer()),
		Defaults:  cfg.Defaults,
		Logger:    logger,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if repoURL != "" {
		_ = f.Apply(ctx, form.Event{Kind: form.KindRepository, Value: repoURL})
	}

	err = readCommands(ctx, cmd.InOrStdin(), f, renderer, w)

	f.Close()
	st.Unsubscribe(ch)
	<-done
	return err
}

// readCommands applies one command per input line until quit or EOF.
func readCommands(ctx context.Context, in io.Reader, f *form.Form, renderer *output.Renderer, w *output.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		name, value, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		value = strings.TrimSpace(value)

		switch strings.ToLower(name) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			w.Plain(interactiveHelp)
		case "show":
			renderer.Show(f.Snapshot())
		default:
			if err := f.Apply(ctx, form.Event{Kind: form.Kind(strings.ToLower(name)), Value: value}); err != nil {
				w.Tone(pullbadge.ToneError, err.Error())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// detectMultiplexer picks the OSC 52 wrapping for the current terminal.
func detectMultiplexer() pullbadge.Multiplexer {
	if os.Getenv("TMUX") != "" {
		return pullbadge.MultiplexerTmux
	}
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		return pullbadge.MultiplexerScreen
	}
	return pullbadge.MultiplexerNone
}
