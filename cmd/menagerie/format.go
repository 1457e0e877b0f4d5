package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		outputResultText(os.Stdout, result)
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputResultText renders the known result payloads as readable text.
func outputResultText(w io.Writer, result CLIResult) {
	switch res := result.Results.(type) {
	case []CLIAnimal:
		formatAnimalsText(w, res)
	case []int64:
		formatTermsText(w, res)
	}
}

// outputError writes an error in the selected format and returns it so
// RunE can propagate it to Cobra. In JSON mode the error is written to
// stdout as a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// formatAnimalsText formats roster records as aligned columns.
func formatAnimalsText(w io.Writer, animals []CLIAnimal) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tSPECIES\tNAME\tAGE\tADMITTED")
	for _, a := range animals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			a.Tag, a.Species, a.Name, a.Age, a.AdmittedAt.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}

// formatTermsText formats Fibonacci terms one per line.
func formatTermsText(w io.Writer, terms []int64) {
	for _, term := range terms {
		fmt.Fprintf(w, "%d\n", term)
	}
}
