package main

import (
	"time"

	"github.com/jward/menagerie"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CLIAnimal is a JSON-friendly roster record.
type CLIAnimal struct {
	Tag        string    `json:"tag"`
	Species    string    `json:"species"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	AdmittedAt time.Time `json:"admitted_at"`
}

func animalToCLI(rec *menagerie.Record) CLIAnimal {
	return CLIAnimal{
		Tag:        rec.Tag,
		Species:    rec.Species,
		Name:       rec.Name,
		Age:        rec.Age,
		AdmittedAt: rec.AdmittedAt,
	}
}

func animalsToCLI(records []*menagerie.Record) []CLIAnimal {
	out := make([]CLIAnimal, len(records))
	for i, rec := range records {
		out[i] = animalToCLI(rec)
	}
	return out
}
