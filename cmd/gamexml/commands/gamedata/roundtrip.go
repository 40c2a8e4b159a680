package gamedata

import (
	"context"
	"errors"
	"fmt"

	"github.com/speakeasy-api/gamexml/cmd/gamexml/commands/cmdutil"
	"github.com/speakeasy-api/gamexml/diff"
	"github.com/speakeasy-api/gamexml/families"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/spf13/cobra"
)

// errNotRoundTripSafe is returned when the serialized output differs structurally from the source.
var errNotRoundTripSafe = errors.New("document does not round-trip")

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [family] <file>",
	Short: "Check that a game data file survives deserialize and serialize unchanged",
	Long: `Deserialize a game data file into its presence model, serialize it again and compare the
result structurally with the source.

The family is detected from the file name when it is omitted. With --view the model is also
mapped onto its typed view and back before serializing, which canonicalises boolean spellings.

Exits with status 1 when any structural difference is found.`,
	Example: `  # Check a file, detecting the family from its name
  gamexml roundtrip ModuleData/looknfeel.xml

  # Check a renamed file through the typed view
  gamexml roundtrip looknfeel custom_looknfeel.xml --view

  # Accept 0/1 booleans and tiny float drift
  gamexml roundtrip combat_parameters.xml --view --booleans --tolerance 0.0001`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runRoundtrip,
}

var roundtripViewFlag bool

func init() {
	roundtripCmd.Flags().BoolVar(&roundtripViewFlag, "view", false, "map through the typed view before serializing")
	addCompareFlags(roundtripCmd)
}

func runRoundtrip(cmd *cobra.Command, args []string) {
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
	processor.Stdout = cmd.OutOrStdout()
	processor.Stderr = cmd.ErrOrStderr()
	processor.Logger = cmdutil.Logger(cmd)

	if err := roundtrip(ctx, processor, family, roundtripViewFlag, compareOptions(cmd)); err != nil {
		cmdutil.Die(err)
	}
}

func roundtrip(ctx context.Context, processor *Processor, family *families.Family, throughView bool, opts []diff.Option) error {
	m, data, err := processor.LoadModel(ctx, family)
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

	report, err := diff.Compare(data, out, opts...)
	if err != nil {
		return err
	}
	processor.logger().Debug("compared documents", "nodes", report.NodeCountDifference, "attributes", report.AttributeCountDifference)

	if report.IsStructurallyEqual() {
		fmt.Fprintf(processor.stdout(), "✅ %s round-trips without structural differences\n", family.Name)
		return nil
	}

	fmt.Fprintf(processor.stdout(), "❌ %s differs after round trip:\n", family.Name)
	fmt.Fprint(processor.stdout(), report.String())
	return errNotRoundTripSafe
}
