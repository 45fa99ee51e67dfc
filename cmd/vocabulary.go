package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/orcid2vivo/vocab"
)

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "Inspect the emitted vocabulary",
	Long:  `Show and check the VIVO-ISF classes, predicates and datatypes used in output.`,
}

var vocabularyShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show the effective vocabulary with all terms expanded",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vocabularyFromArgs(args)
		if err != nil {
			return err
		}

		// Print as YAML
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

var vocabularyCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check that a vocabulary override file is complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vocabularyFromArgs(args)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Valid: vocabulary %q, individuals in %s\n", v.Name, v.Individual)
		return nil
	},
}

func vocabularyFromArgs(args []string) (*vocab.Vocabulary, error) {
	if len(args) == 0 {
		return vocab.Default()
	}
	return vocab.Load(args[0])
}

func init() {
	vocabularyCmd.AddCommand(vocabularyShowCmd)
	vocabularyCmd.AddCommand(vocabularyCheckCmd)
}
