package menagerie

import (
	"errors"
	"fmt"
	"io"
)

// ErrNegativeAge is returned by animal constructors when age < 0.
var ErrNegativeAge = errors.New("menagerie: negative age")

// Species labels for the concrete animal types. These are the
// discriminators the roster store persists.
const (
	SpeciesAnimal = "animal"
	SpeciesDog    = "dog"
	SpeciesCat    = "cat"
)

// Animal is the dispatch point for the hierarchy. Implementations are
// immutable after construction: any constructed animal can always
// speak, and Speak always writes exactly one newline-terminated line.
type Animal interface {
	Name() string
	Age() int
	// Species returns the stable label used to round-trip the animal
	// through the roster store.
	Species() string
	// Speak writes the animal's line to w.
	Speak(w io.Writer) error
}

// Generic is the base animal. It speaks a greeting that includes its
// name and age.
type Generic struct {
	name string
	age  int
}

// NewAnimal returns a Generic animal with the given name and age.
func NewAnimal(name string, age int) (*Generic, error) {
	if age < 0 {
		return nil, fmt.Errorf("new animal %q: %w", name, ErrNegativeAge)
	}
	return &Generic{name: name, age: age}, nil
}

func (g *Generic) Name() string    { return g.name }
func (g *Generic) Age() int        { return g.age }
func (g *Generic) Species() string { return SpeciesAnimal }

func (g *Generic) Speak(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s says hello, age %d\n", g.name, g.age)
	return err
}

// Dog overrides Speak with a bark.
type Dog struct {
	Generic
}

// NewDog returns a Dog with the given name and age.
func NewDog(name string, age int) (*Dog, error) {
	g, err := NewAnimal(name, age)
	if err != nil {
		return nil, err
	}
	return &Dog{Generic: *g}, nil
}

func (d *Dog) Species() string { return SpeciesDog }

func (d *Dog) Speak(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s says: Woof!\n", d.name)
	return err
}

// Cat overrides Speak with a meow.
type Cat struct {
	Generic
}

// NewCat returns a Cat with the given name and age.
func NewCat(name string, age int) (*Cat, error) {
	g, err := NewAnimal(name, age)
	if err != nil {
		return nil, err
	}
	return &Cat{Generic: *g}, nil
}

func (c *Cat) Species() string { return SpeciesCat }

func (c *Cat) Speak(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s says: Meow!\n", c.name)
	return err
}

// NewBySpecies constructs the concrete type named by species. It is
// the inverse of [Animal.Species], used when rebuilding a Zoo from
// stored records.
func NewBySpecies(species, name string, age int) (Animal, error) {
	switch species {
	case SpeciesAnimal:
		return NewAnimal(name, age)
	case SpeciesDog:
		return NewDog(name, age)
	case SpeciesCat:
		return NewCat(name, age)
	default:
		return nil, fmt.Errorf("unknown species %q", species)
	}
}
