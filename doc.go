// Package menagerie is a small teaching library built around a
// polymorphic animal model, an owning Zoo container with an exact
// text output contract, and a pair of Fibonacci utilities.
//
// # Animals
//
// [Animal] is the single dispatch point: every animal has a name, an
// age, a species label, and a Speak method that writes one line of
// text. Three concrete types implement it:
//
//   - [Generic] — "<name> says hello, age <age>"
//   - [Dog]     — "<name> says: Woof!"
//   - [Cat]     — "<name> says: Meow!"
//
// Animals are immutable after construction; constructors reject a
// negative age with [ErrNegativeAge].
//
// # Zoo
//
// A [Zoo] exclusively owns an ordered sequence of animals. Adding an
// animal transfers it to the zoo; enumeration and speaking preserve
// insertion order. Output goes to the writer configured with
// [WithOutput] (os.Stdout by default), so the text contract is
// directly testable:
//
//	z := menagerie.NewZoo()
//	d, _ := menagerie.NewDog("Buddy", 4)
//	z.AddAnimal(d)
//	z.ListAnimalNames() // writes "Animals in the zoo: Buddy \n"
//
// # Keeper
//
// [Keeper] persists a roster of animals to SQLite so the menagerie
// CLI has durable state between runs. Open a keeper, admit animals,
// and rebuild a Zoo from the stored roster:
//
//	k, err := menagerie.Open("zoo.db")
//	if err != nil { ... }
//	defer k.Close()
//
//	rec, err := k.Admit(d)
//	z, err := k.Zoo()
//
// # Fibonacci
//
// [GenerateFibonacci] returns every term strictly below a bound and
// [FibonacciTerms] returns a fixed-length prefix; both reject
// negative input with [ErrNegativeBound]. [DoubleAge] doubles an
// integer and exists for parity with the animal ages stored above.
package menagerie
