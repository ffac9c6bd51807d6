package trip

import (
	"cmp"
	"fmt"
)

// Route is an ordered pair of stations. (A, B) and (B, A) are different routes.
type Route struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CompareRoutes orders routes by start station and then by end station
func CompareRoutes(a Route, b Route) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.Start, r.End)
}
