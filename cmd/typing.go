package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/farooque06/portfolio/internal/config"
	"github.com/farooque06/portfolio/internal/content"
	"github.com/farooque06/portfolio/internal/typing"
)

var (
	typingPhrases  []string
	typingDuration time.Duration
)

var typingCmd = &cobra.Command{
	Use:   "typing",
	Short: "Preview the hero typing animation in the terminal",
	Long: `Runs the hero banner's typing animator and redraws each change on a
single terminal line. Phrases default to the profile roles; intervals
come from the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		phrases := typingPhrases
		if len(phrases) == 0 {
			site, err := content.Load(cfg.ContentFile)
			if err != nil {
				return fmt.Errorf("loading content: %w", err)
			}
			phrases = site.Profile.Roles
		}

		animator := typing.New(nil)
		updates := animator.Subscribe(64)
		if err := animator.Start(phrases, cfg.TypingAnimator()); err != nil {
			return err
		}
		defer animator.Close()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		var deadline <-chan time.Time
		if typingDuration > 0 {
			deadline = time.After(typingDuration)
		}

		out := cmd.OutOrStdout()
		for {
			select {
			case text := <-updates:
				fmt.Fprintf(out, "\r\033[K%s|", text)
			case <-interrupt:
				fmt.Fprintln(out)
				return nil
			case <-deadline:
				fmt.Fprintln(out)
				return nil
			}
		}
	},
}

func init() {
	typingCmd.Flags().StringSliceVar(&typingPhrases, "phrase", nil, "phrase to cycle through (repeatable)")
	typingCmd.Flags().DurationVar(&typingDuration, "for", 0, "stop after this long (0 runs until interrupted)")
	rootCmd.AddCommand(typingCmd)
}
