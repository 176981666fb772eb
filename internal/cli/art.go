package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/errmsg"
	"github.com/j6k4m8/beetsheet/internal/sheet"
)

func newArtCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "art <image> [paths...]",
		Short: "Embed an image as the front cover of the given tracks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imagePath := args[0]
			if _, err := os.Stat(imagePath); err != nil {
				return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpCoverAttach, imagePath, err))
			}

			paths, err := collectTracks(cfg, args[1:])
			if err != nil {
				return fmt.Errorf("%s", errmsg.Format(errmsg.OpFileScan, err))
			}

			s := sheet.New(sheet.FileStore{}, paths)
			s.SelectAll()
			done, failed := s.AttachCoverSelected(imagePath)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attached cover to %d of %d track(s)\n", done, s.Len())
			if failed > 0 {
				fmt.Fprintln(out, errmsg.Format(errmsg.OpCoverAttach, fmt.Errorf("%d track(s) failed", failed)))
			}
			return nil
		},
	}
}
