package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strvec/foundation/utils/stringx"
	"github.com/msto63/strvec/internal/render"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		decreasing bool
		naPlace    string
		order      bool
		stringsIn  string
	)

	cmd := &cobra.Command{
		Use:   "sort [strings...]",
		Short: "Vektor sortieren",
		Long: `Sortiert einen Vektor stabil nach Unicode-Codepunkten.

Beispiele:
  strvec sort birne apfel NA
  strvec sort birne apfel NA --decreasing --na first
  strvec sort birne apfel --order   # Positionen statt Werte (ab 0)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strs, err := a.stringSeq(args, stringsIn)
			if err != nil {
				return err
			}
			placement, err := stringx.ParseNAPlacement(naPlace)
			if err != nil {
				return err
			}

			if order {
				var positions []int
				if err := a.run("order", func() error {
					positions = stringx.Order(strs, decreasing, placement)
					return nil
				}); err != nil {
					return err
				}
				return a.renderer.Indices(a.stdout, positions)
			}

			var out stringx.StringSeq
			if err := a.run("sort", func() error {
				out = stringx.Sort(strs, decreasing, placement)
				return nil
			}); err != nil {
				return err
			}
			return render.Sequence(a.renderer, a.stdout, out)
		},
	}

	cmd.Flags().BoolVar(&decreasing, "decreasing", false, "Absteigend sortieren")
	cmd.Flags().StringVar(&naPlace, "na", "last", "Position fehlender Werte (last, first, remove)")
	cmd.Flags().BoolVar(&order, "order", false, "Sortierpositionen statt Werte ausgeben")
	cmd.Flags().StringVar(&stringsIn, "strings-from", "", "Vektor mit Strings aus dem Eingabedokument")
	return cmd
}
