package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/errmsg"
	"github.com/j6k4m8/beetsheet/internal/sheet"
)

func newListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List tracks with their current tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectTracks(cfg, args)
			if err != nil {
				return fmt.Errorf("%s", errmsg.Format(errmsg.OpFileScan, err))
			}

			s := sheet.New(sheet.FileStore{}, paths)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tTRACK\tTITLE\tARTIST\tALBUM\tART\tSIZE\tFILE")
			for _, row := range s.Rows() {
				art := ""
				if row.HasAlbumArt {
					art = "yes"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					row.Index+1, row.TrackNumber, row.Title, row.Artist, row.Album,
					art, fileSize(row.Path), row.Path)
			}
			return w.Flush()
		},
	}
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return humanize.IBytes(uint64(info.Size())) //nolint:gosec // file sizes are non-negative
}
