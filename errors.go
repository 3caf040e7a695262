package tableaccess

import "fmt"

// LaunchShortfall - Custom error to inform that fewer workers could be launched than requested.
// The run behind it was still completed and joined, only its results were discarded.
type LaunchShortfall struct {
	Started   uint32
	Requested uint32
}

// Error - Used to notify that the run launched fewer workers than requested
func (E LaunchShortfall) Error() string {
	return fmt.Sprintf("launched %d of %d requested threads", E.Started, E.Requested)
}
