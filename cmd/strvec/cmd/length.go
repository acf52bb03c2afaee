package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strvec/foundation/utils/stringx"
)

func newLengthCmd(a *app) *cobra.Command {
	var stringsIn string

	cmd := &cobra.Command{
		Use:   "length [strings...]",
		Short: "Byte- und Zeichenlängen",
		Long: `Zeigt für jedes Element die Länge in Bytes und in Unicode-Zeichen.

Elemente mit ungültigem UTF-8 haben die Zeichenlänge NA.

Beispiele:
  strvec length abc äöü
  strvec length --input daten.yaml --strings-from namen -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strs, err := a.stringSeq(args, stringsIn)
			if err != nil {
				return err
			}

			var byteLens, charLens stringx.IntSeq
			if err := a.run("length", func() error {
				byteLens = stringx.NumBytes(strs)
				charLens = stringx.Length(strs, a.opts()...)
				return nil
			}); err != nil {
				return err
			}
			return a.renderer.LengthTable(a.stdout, strs, byteLens, charLens)
		},
	}

	cmd.Flags().StringVar(&stringsIn, "strings-from", "", "Vektor mit Strings aus dem Eingabedokument")
	return cmd
}
