package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strvec/foundation/utils/stringx"
	"github.com/msto63/strvec/internal/render"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		op    string
		aFrom string
		bFrom string
	)

	cmd := &cobra.Command{
		Use:   "compare [vektor-a] [vektor-b]",
		Short: "Vektoren vergleichen",
		Long: `Vergleicht zwei Vektoren elementweise nach Unicode-Codepunkten.

Ohne --op ist das Ergebnis -1, 0 oder 1 je Element. Mit --op
(==, !=, <, <=, >, >= oder eq, ne, lt, le, gt, ge) ist es TRUE/FALSE.

Beispiele:
  strvec compare a,b,c b
  strvec compare apfel,birne birne --op "<"
  strvec compare --input daten.yaml --a-from alt --b-from neu --op ne`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := a.pair(args, aFrom, bFrom)
			if err != nil {
				return err
			}

			if op == "" {
				var out stringx.IntSeq
				if err := a.run("compare", func() error {
					out = stringx.Compare(left, right, a.opts()...)
					return nil
				}); err != nil {
					return err
				}
				return render.Sequence(a.renderer, a.stdout, out)
			}

			compareOp, err := stringx.ParseCompareOp(op)
			if err != nil {
				return err
			}
			var out stringx.LogicalSeq
			if err := a.run("compare", func() error {
				out = stringx.CompareWith(left, right, compareOp, a.opts()...)
				return nil
			}); err != nil {
				return err
			}
			return render.Sequence(a.renderer, a.stdout, out)
		},
	}

	cmd.Flags().StringVar(&op, "op", "", "Vergleichsoperator")
	cmd.Flags().StringVar(&aFrom, "a-from", "", "Linker Vektor aus dem Eingabedokument")
	cmd.Flags().StringVar(&bFrom, "b-from", "", "Rechter Vektor aus dem Eingabedokument")
	return cmd
}

// pair resolves the two operands of a binary command. Document vectors
// take precedence; remaining operands come from the arguments in order.
func (a *app) pair(args []string, aFrom, bFrom string) (stringx.StringSeq, stringx.StringSeq, error) {
	operands := make([]stringx.StringSeq, 0, 2)
	for _, name := range []string{aFrom, bFrom} {
		if name == "" {
			continue
		}
		seq, err := a.stringSeq(nil, name)
		if err != nil {
			return nil, nil, err
		}
		operands = append(operands, seq)
	}
	for _, arg := range args {
		operands = append(operands, a.splitSeq(arg))
	}
	if len(operands) != 2 {
		return nil, nil, usageError("compare", "genau zwei Vektoren erwartet")
	}
	return operands[0], operands[1], nil
}
