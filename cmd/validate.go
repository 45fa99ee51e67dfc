package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
)

var (
	validateInput   string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an ORCID profile without crosswalking it",
	Long: `Parse an ORCID profile and report what the crosswalk would see.

No CrossRef lookups are made. Useful for checking which works carry a DOI
or a citation before a batch run.

Input defaults to stdin.

Examples:
  orcid2vivo validate -i 0000-0003-1527-0030.json
  orcid2vivo validate -i 0000-0003-1527-0030.json --verbose`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input profile file (default: stdin)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
}

func runValidate(cmd *cobra.Command, args []string) error {
	name := validateInput
	if name == "" {
		name = "-"
	}

	p, err := readProfile(name)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	works := p.Works()
	withDOI, withCitation := 0, 0
	for _, w := range works {
		if _, ok := w.Identifier(orcid.IdentifierDOI); ok {
			withDOI++
		}
		if _, _, ok := w.CitationBlob(); ok {
			withCitation++
		}
	}

	fmt.Printf("✓ Valid: %s (%s), %d works, %d with DOI, %d with citation\n",
		p.ORCID(), p.Name().Direct(), len(works), withDOI, withCitation)

	if validateVerbose {
		fmt.Println("\nWork summary:")
		for i, w := range works {
			fmt.Printf("\n  Work %d:\n", i+1)
			fmt.Printf("    Title: %s\n", truncate(w.Title(), 60))
			fmt.Printf("    Type: %s\n", w.Type())
			if d := w.PublicationDate(); !d.IsZero() {
				fmt.Printf("    Date: %s\n", d.Label())
			}
			if doi, ok := w.Identifier(orcid.IdentifierDOI); ok {
				fmt.Printf("    DOI: %s\n", doi)
			}
			if marker, text, ok := w.CitationBlob(); ok {
				fmt.Printf("    Citation: %s (%s)\n", marker, citationStatus(marker, text))
			}
		}
	}

	return nil
}

// citationStatus reports whether a citation blob has a parser and, when the
// parser can tell, whether the blob looks like its format.
func citationStatus(marker, text string) string {
	parser, err := format.GetCitationParser(marker)
	if err != nil {
		return "unsupported"
	}
	if d, ok := parser.(format.Detector); ok && !d.CanParse([]byte(text)) {
		return "unrecognised content"
	}
	return "supported"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
