package gamedata

import (
	"fmt"
	"io"

	"github.com/speakeasy-api/gamexml/families"
	"github.com/spf13/cobra"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the game data families that can be mapped",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listFamilies(cmd.OutOrStdout())
	},
}

func listFamilies(w io.Writer) {
	for _, f := range families.All() {
		fmt.Fprintf(w, "%-16s %-24s <%s>\n", f.Name, f.FileName, f.RootName)
	}
}
