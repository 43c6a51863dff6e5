// Package console provides validated line-oriented input for the
// interactive calculators.
//
// # Reader
//
// Reader couples an input stream with an output writer and keeps
// reprompting until it gets a value it can accept:
//
//	r := console.NewReader(os.Stdin, os.Stdout)
//
//	choice, err := r.ReadInt("Select: ", 0, 6)
//	ohms, err := r.ReadPositiveFloat("Enter R (Ω): ")
//	save := r.ReadYesNo("Save this result? (y/n): ")
//
// # Error model
//
// Malformed and out-of-range input is handled locally with a message and
// a reprompt; it never surfaces as an error. The only error any read
// method returns is ErrInputClosed, raised when the input stream ends.
// That condition is unrecoverable for an interactive program and should
// be propagated up to main.
package console
