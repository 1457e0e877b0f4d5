package menagerie

import (
	"fmt"
	"io"
	"os"
)

// Zoo owns an ordered collection of animals. Ownership is exclusive:
// once added, an animal belongs to this zoo and is released when the
// zoo goes out of scope. Insertion order is preserved and there is no
// removal operation.
type Zoo struct {
	animals []Animal
	out     io.Writer
}

// ZooOption configures a Zoo.
type ZooOption func(*Zoo)

// WithOutput directs the zoo's text output to w instead of os.Stdout.
func WithOutput(w io.Writer) ZooOption {
	return func(z *Zoo) {
		z.out = w
	}
}

// NewZoo creates an empty Zoo writing to os.Stdout unless overridden
// with WithOutput.
func NewZoo(opts ...ZooOption) *Zoo {
	z := &Zoo{out: os.Stdout}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// AddAnimal appends a to the end of the zoo's sequence, taking
// ownership of it.
func (z *Zoo) AddAnimal(a Animal) {
	z.animals = append(z.animals, a)
}

// Len returns the number of animals in the zoo.
func (z *Zoo) Len() int {
	return len(z.animals)
}

// Animals returns a snapshot of the zoo's animals in insertion order.
// The slice is a copy; the animals themselves remain owned by the zoo.
func (z *Zoo) Animals() []Animal {
	out := make([]Animal, len(z.animals))
	copy(out, z.animals)
	return out
}

// ListAnimalNames writes "Animals in the zoo: " followed by each
// animal's name in insertion order, each name followed by a single
// space, then a newline. The output is identical across repeated
// calls on an unmodified zoo.
func (z *Zoo) ListAnimalNames() error {
	if _, err := io.WriteString(z.out, "Animals in the zoo: "); err != nil {
		return fmt.Errorf("list animal names: %w", err)
	}
	for _, a := range z.animals {
		if _, err := io.WriteString(z.out, a.Name()+" "); err != nil {
			return fmt.Errorf("list animal names: %w", err)
		}
	}
	if _, err := io.WriteString(z.out, "\n"); err != nil {
		return fmt.Errorf("list animal names: %w", err)
	}
	return nil
}

// SpeakAll has every animal speak to the zoo's writer, in insertion
// order.
func (z *Zoo) SpeakAll() error {
	for _, a := range z.animals {
		if err := a.Speak(z.out); err != nil {
			return fmt.Errorf("speak %s: %w", a.Name(), err)
		}
	}
	return nil
}
