package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resume-roast/internal/checkout"
)

//nolint:gochecknoglobals // Cobra boilerplate
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the checkout products and prices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tPRICE\tNAME")
		for _, p := range checkout.Products() {
			fmt.Fprintf(w, "%s\t$%d.%02d\t%s\n", p.Key, p.PriceCents/100, p.PriceCents%100, p.Name)
		}
		return w.Flush()
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(productsCmd)
}
