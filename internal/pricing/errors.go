package pricing

import "errors"

// errNoPreferredSource indicates the provider responded but the preferred
// source quote was missing or non-positive.
var errNoPreferredSource = errors.New("preferred rate source not found in response")
