package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/errmsg"
	"github.com/j6k4m8/beetsheet/internal/sheet"
)

func newGuessCommand(cfg *config.Config) *cobra.Command {
	var titles bool
	var trackNumbers bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "guess [paths...]",
		Short: "Derive tags from filenames and save them",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectTracks(cfg, args)
			if err != nil {
				return fmt.Errorf("%s", errmsg.Format(errmsg.OpFileScan, err))
			}

			// Neither flag means both heuristics
			if !titles && !trackNumbers {
				titles = true
				trackNumbers = true
			}

			s := sheet.New(sheet.FileStore{}, paths)
			out := cmd.OutOrStdout()

			if artist, ok := s.GuessArtist(); ok {
				fmt.Fprintf(out, "Common artist prefix: %s\n", artist)
			}

			if titles {
				r := s.GuessTitles()
				fmt.Fprintf(out, "Titles: %d applied, %d skipped\n", r.Applied, r.Skipped)
			}
			if trackNumbers {
				r := s.GuessTrackNumbers()
				fmt.Fprintf(out, "Track numbers: %d applied, %d skipped\n", r.Applied, r.Skipped)
			}

			if dryRun {
				for _, row := range s.Rows() {
					if row.Dirty {
						fmt.Fprintf(out, "  would save: %s [%s] %s\n", row.Path, row.TrackNumber, row.Title)
					}
				}
				fmt.Fprintf(out, "Dry run, %d track(s) left unsaved\n", s.DirtyCount())
				return nil
			}

			dirty := s.DirtyCount()
			saved, failed := s.SaveDirty()
			fmt.Fprintf(out, "Saved %d of %d track(s)\n", saved, dirty)
			if failed > 0 {
				fmt.Fprintln(out, errmsg.Format(errmsg.OpTagsSave, fmt.Errorf("%d track(s) failed", failed)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&titles, "titles", false, "Guess titles from filenames")
	cmd.Flags().BoolVar(&trackNumbers, "tracks", false, "Guess track numbers from filenames")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without saving")

	return cmd
}
