package keywords

import (
	"testing"

	"go.uber.org/goleak"
)

// Every test closes its database handles; a leaked connection opener shows up here.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
