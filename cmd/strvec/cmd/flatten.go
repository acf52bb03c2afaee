package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strvec/foundation/utils/stringx"
	"github.com/msto63/strvec/internal/coerce"
	"github.com/msto63/strvec/internal/render"
)

func newFlattenCmd(a *app) *cobra.Command {
	var (
		seps      []string
		stringsIn string
		sepIn     string
	)

	cmd := &cobra.Command{
		Use:   "flatten [strings...]",
		Short: "Vektor zu einem String zusammenfassen",
		Long: `Verkettet alle Elemente eines Vektors zu einem einzigen String.

Mit --sep wird der Trenner zwischen benachbarte Elemente gesetzt. Werden
mehrere Trenner angegeben, gilt nur der erste (mit Warnung).

Beispiele:
  strvec flatten a b c
  strvec flatten a b c --sep -
  strvec flatten --input daten.yaml --strings-from namen --sep ", "`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strs, err := a.stringSeq(args, stringsIn)
			if err != nil {
				return err
			}

			var sep stringx.StringSeq
			withSep := cmd.Flags().Changed("sep") || sepIn != ""
			if sepIn != "" {
				if sep, err = a.stringSeq(nil, sepIn); err != nil {
					return err
				}
			} else if withSep {
				sep = coerce.ParseStrings(seps, a.naString)
			}

			var out stringx.StringSeq
			if err := a.run("flatten", func() error {
				if withSep {
					out, err = stringx.FlattenSep(strs, sep, a.opts()...)
				} else {
					out, err = stringx.Flatten(strs, a.opts()...)
				}
				return err
			}); err != nil {
				return err
			}
			return render.Sequence(a.renderer, a.stdout, out)
		},
	}

	cmd.Flags().StringArrayVarP(&seps, "sep", "s", nil, "Trenner zwischen den Elementen")
	cmd.Flags().StringVar(&stringsIn, "strings-from", "", "Vektor mit Strings aus dem Eingabedokument")
	cmd.Flags().StringVar(&sepIn, "sep-from", "", "Vektor mit Trennern aus dem Eingabedokument")
	return cmd
}
