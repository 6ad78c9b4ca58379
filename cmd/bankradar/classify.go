package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/contract"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [title...]",
	Short: "Classify job titles",
	Long: "Classifies each title argument, or each line of stdin when no argument is given,\n" +
		"and prints the category, contract type and the rule that decided it.",
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	c, err := classify.Default()
	if err != nil {
		return fmt.Errorf("building classifier: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		printClassification(out, c, strings.Join(args, " "))
		return nil
	}
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			printClassification(out, c, line)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

func printClassification(w io.Writer, c *classify.Classifier, title string) {
	exp := c.ClassifyWithExplanation(title)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", title, exp.Category, contract.Normalize(title, ""), exp)
}

