package gamedata

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/gamexml/cmd/gamexml/commands/cmdutil"
	"github.com/speakeasy-api/gamexml/families"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [family] <file>",
	Short: "Rewrite a game data file in canonical form",
	Long: `Deserialize a game data file and write it back in canonical form: attributes in schema
order, unknown members after known ones, and the formatting of the source or of --config.

With --view booleans are also rewritten as true/false. Output goes to stdout unless -o or -w is
given.`,
	Example: `  # Print the canonical form
  gamexml normalize item_modifiers.xml

  # Canonicalise booleans in place
  gamexml normalize looknfeel.xml --view -w

  # Read from stdin
  cat banner_icons.xml | gamexml normalize bannericons -`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runNormalize,
}

var (
	normalizeOutFlag   string
	normalizeWriteFlag bool
	normalizeViewFlag  bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutFlag, "out", "o", "", "output file path (defaults to stdout)")
	normalizeCmd.Flags().BoolVarP(&normalizeWriteFlag, "write", "w", false, "write the result back to the input file")
	normalizeCmd.Flags().BoolVar(&normalizeViewFlag, "view", false, "map through the typed view before serializing")
}

func runNormalize(cmd *cobra.Command, args []string) {
	ctx, err := cmdutil.Context(cmd)
	if err != nil {
		cmdutil.Die(err)
	}

	family, file, err := resolveFamily(args)
	if err != nil {
		cmdutil.Die(err)
	}

	processor, err := NewProcessor(file, normalizeOutFlag, normalizeWriteFlag)
	if err != nil {
		cmdutil.Die(err)
	}
	processor.Stdout = cmd.OutOrStdout()
	processor.Stderr = cmd.ErrOrStderr()
	processor.Logger = cmdutil.Logger(cmd)

	if err := normalize(ctx, processor, family, normalizeViewFlag); err != nil {
		cmdutil.Die(err)
	}
}

func normalize(ctx context.Context, processor *Processor, family *families.Family, throughView bool) error {
	m, _, err := processor.LoadModel(ctx, family)
	if err != nil {
		return err
	}

	if throughView {
		m, err = family.ThroughView(m)
		if err != nil {
			return fmt.Errorf("failed to map %s document through its view: %w", family.Name, err)
		}
	}

	out, err := marshaller.Serialize(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to serialize %s document: %w", family.Name, err)
	}

	return processor.WriteOutput(out)
}
