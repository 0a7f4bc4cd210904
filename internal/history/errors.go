package history

import "fmt"

// FormatError reports a malformed or incomplete location export. It is
// fatal to the load: there is no per-record partial success, the whole
// dataset construction is aborted.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid location export: " + e.Reason
}

// IndexError reports a filter mask whose length does not match the
// current view. The call that produced it leaves the view unchanged.
type IndexError struct {
	Want int // Length of the current view
	Got  int // Length of the supplied mask
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("filter mask length %d does not match view length %d", e.Got, e.Want)
}
