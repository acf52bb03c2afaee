package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strvec/foundation/utils/stringx"
	"github.com/msto63/strvec/internal/render"
)

func newDupCmd(a *app) *cobra.Command {
	var (
		times     []string
		stringsIn string
		timesIn   string
	)

	cmd := &cobra.Command{
		Use:   "dup [strings...]",
		Short: "Strings vervielfachen",
		Long: `Wiederholt jeden String so oft wie die zugehörige Anzahl angibt.

Negative oder fehlende Anzahlen ergeben NA, die Anzahl 0 einen leeren String.

Beispiele:
  strvec dup ab --times 3
  strvec dup a b c --times 1,2
  strvec dup --input daten.yaml --strings-from namen --times-from anzahl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strs, err := a.stringSeq(args, stringsIn)
			if err != nil {
				return err
			}
			counts, err := a.intSeq(times, timesIn)
			if err != nil {
				return err
			}

			var out stringx.StringSeq
			if err := a.run("dup", func() error {
				out, err = stringx.Dup(strs, counts, a.opts()...)
				return err
			}); err != nil {
				return err
			}
			return render.Sequence(a.renderer, a.stdout, out)
		},
	}

	cmd.Flags().StringSliceVarP(&times, "times", "n", nil, "Anzahlen (kommagetrennt, NA erlaubt)")
	cmd.Flags().StringVar(&stringsIn, "strings-from", "", "Vektor mit Strings aus dem Eingabedokument")
	cmd.Flags().StringVar(&timesIn, "times-from", "", "Vektor mit Anzahlen aus dem Eingabedokument")
	return cmd
}
