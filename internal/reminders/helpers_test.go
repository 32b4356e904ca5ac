package reminders

import (
	"fitviz/internal/providers"
	"fitviz/internal/structures"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSystemClock(t *testing.T) providers.Clock {
	t.Helper()
	clock, err := providers.NewClockProvider(&structures.Config{Clock: structures.ClockConfig{Timezone: "UTC"}})
	require.NoError(t, err)
	return clock
}
