package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/errmsg"
	"github.com/j6k4m8/beetsheet/internal/sheet"
)

func newSetCommand(cfg *config.Config) *cobra.Command {
	var artist, album, title, track string

	cmd := &cobra.Command{
		Use:   "set [paths...]",
		Short: "Overwrite a tag field on every given track",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[sheet.Field]string{}
			if cmd.Flags().Changed("artist") {
				fields[sheet.FieldArtist] = artist
			}
			if cmd.Flags().Changed("album") {
				fields[sheet.FieldAlbum] = album
			}
			if cmd.Flags().Changed("title") {
				fields[sheet.FieldTitle] = title
			}
			if cmd.Flags().Changed("track") {
				fields[sheet.FieldTrackNumber] = track
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to set: pass --artist, --album, --title or --track")
			}

			paths, err := collectTracks(cfg, args)
			if err != nil {
				return fmt.Errorf("%s", errmsg.Format(errmsg.OpFileScan, err))
			}

			s := sheet.New(sheet.FileStore{}, paths)
			for field, value := range fields {
				if err := s.SetFieldAll(field, value); err != nil {
					return err
				}
			}

			dirty := s.DirtyCount()
			saved, failed := s.SaveDirty()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved %d of %d track(s)\n", saved, dirty)
			if failed > 0 {
				fmt.Fprintln(out, errmsg.Format(errmsg.OpTagsSave, fmt.Errorf("%d track(s) failed", failed)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Artist to set on every track")
	cmd.Flags().StringVar(&album, "album", "", "Album to set on every track")
	cmd.Flags().StringVar(&title, "title", "", "Title to set on every track")
	cmd.Flags().StringVar(&track, "track", "", "Track number to set on every track")

	return cmd
}
