package importer

import "errors"

// ErrParseFailed reports an import payload with zero well-formed rows. The
// registry is untouched when it is returned.
var ErrParseFailed = errors.New("no valid records found in import payload")
