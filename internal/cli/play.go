package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/errmsg"
	"github.com/j6k4m8/beetsheet/internal/player"
	"github.com/j6k4m8/beetsheet/internal/tags"
)

func newPlayCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play <file>",
		Short: "Play a single track (Ctrl-C stops)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			p := player.New(cfg.Volume)
			defer p.Close()

			if err := p.Play(path); err != nil {
				return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpPlaybackStart, path, err))
			}

			t := tags.Read(path)
			fmt.Fprintf(cmd.OutOrStdout(), "Playing %s - %s (%s)\n", t.Artist, t.Title, p.Duration().Round(time.Second))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)

			select {
			case <-p.Done():
			case <-sig:
				p.Stop()
			}
			return nil
		},
	}
}
