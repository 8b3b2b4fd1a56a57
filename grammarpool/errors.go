package grammarpool

import "errors"

var errUnregisteredGrammar = errors.New("no loader registered for grammar ref")
