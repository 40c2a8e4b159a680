package gamedata

import (
	"context"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/speakeasy-api/gamexml/cmd/gamexml/commands/cmdutil"
	"github.com/speakeasy-api/gamexml/families"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [family] <file>",
	Short: "Print the presence model of a game data file",
	Long: `Deserialize a game data file and print its presence model, including the Present flag of
every optional member, preserved unknown members and namespace declarations. Useful to see why
a member is or is not written back.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runDump,
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runDump(cmd *cobra.Command, args []string) {
	ctx, err := cmdutil.Context(cmd)
	if err != nil {
		cmdutil.Die(err)
	}

	family, file, err := resolveFamily(args)
	if err != nil {
		cmdutil.Die(err)
	}

	processor, err := NewProcessor(file, "", false)
	if err != nil {
		cmdutil.Die(err)
	}
	processor.Stderr = cmd.ErrOrStderr()
	processor.Logger = cmdutil.Logger(cmd)

	if err := dump(ctx, processor, family, cmd.OutOrStdout()); err != nil {
		cmdutil.Die(err)
	}
}

func dump(ctx context.Context, processor *Processor, family *families.Family, w io.Writer) error {
	m, _, err := processor.LoadModel(ctx, family)
	if err != nil {
		return err
	}

	dumpConfig.Fdump(w, m)
	return nil
}
