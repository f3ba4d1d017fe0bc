package ports

// Presenter is the abstraction for any service rendering the interactive
// session to the user. It only receives plain data, formatting is entirely
// up to the implementation.
type Presenter interface {
	// Welcome shows the introductory banner.
	Welcome()
	// InputRequest prompts the user for the next input line.
	InputRequest(msg string)
	// Success acknowledges that the last input has been acquired.
	Success()
	// Mnemonic renders the generated mnemonic as an ordered list of words.
	Mnemonic(words []string)
	// Verified notifies that the given mnemonic is valid.
	Verified(numOfWords int)
	// Entropy renders the entropy encoded by a mnemonic in hex format.
	Entropy(hexEntropy string)
}
