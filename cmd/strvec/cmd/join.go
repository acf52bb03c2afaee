package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strvec/foundation/utils/stringx"
	"github.com/msto63/strvec/internal/render"
)

func newJoinCmd(a *app) *cobra.Command {
	var from []string

	cmd := &cobra.Command{
		Use:   "join [vektor...]",
		Short: "Vektoren elementweise verketten",
		Long: `Verkettet zwei oder mehr Vektoren Element für Element.

Jedes Argument ist ein Vektor, dessen Elemente mit --delim getrennt sind.
Kürzere Vektoren werden zyklisch wiederholt; ist ein Element NA,
ist das Ergebnis an dieser Stelle NA.

Beispiele:
  strvec join a,b,c x
  strvec join bild _ 1,2,3
  strvec join --input daten.yaml --from praefix --from namen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs := make([]stringx.StringSeq, 0, len(args)+len(from))
			for _, name := range from {
				seq, err := a.stringSeq(nil, name)
				if err != nil {
					return err
				}
				seqs = append(seqs, seq)
			}
			for _, arg := range args {
				seqs = append(seqs, a.splitSeq(arg))
			}

			var out stringx.StringSeq
			if err := a.run("join", func() error {
				var err error
				out, err = stringx.Join(seqs, a.opts()...)
				return err
			}); err != nil {
				return err
			}
			return render.Sequence(a.renderer, a.stdout, out)
		},
	}

	cmd.Flags().StringArrayVar(&from, "from", nil, "Vektor aus dem Eingabedokument (mehrfach angebbar)")
	return cmd
}
