package main

import (
	"github.com/lehigh-university-libraries/orcid2vivo/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/bibtex"
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/csv"
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/jsonl"
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/ntriples"
)

func main() {
	cmd.Execute()
}
