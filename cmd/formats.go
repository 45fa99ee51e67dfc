package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List registered citation and output formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range format.DefaultRegistry.List() {
			f, _ := format.Get(name)

			var roles []string
			if _, ok := f.(format.CitationParser); ok {
				roles = append(roles, "citation")
			}
			if _, ok := f.(format.Serializer); ok {
				roles = append(roles, "output")
			}

			exts := ""
			if len(f.Extensions()) > 0 {
				exts = " (." + strings.Join(f.Extensions(), ", .") + ")"
			}
			fmt.Printf("  %-10s %-16s %s%s\n", name, strings.Join(roles, ","), f.Description(), exts)
		}
	},
}
