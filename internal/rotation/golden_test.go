package rotation

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestDump_Golden walks one session through the whole lifecycle and
// pins the dump output at each checkpoint.
func TestDump_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	s := mustSession(t, Settings{MaxPlayers: 12, Courts: 2, GamesPerRotation: 2})
	g.Assert(t, "session_new", []byte(s.Snapshot().Dump()))

	require.NoError(t, s.AddPlayers([]string{
		"Alice", "Bob", "Carol", "Dave", "Eve",
		"Frank", "Grace", "Heidi", "Ivan", "Judy",
	}))
	s.FillCourts()
	g.Assert(t, "session_after_fill", []byte(s.Snapshot().Dump()))

	require.NoError(t, s.RecordResult(1, TeamA))
	s.FillCourts()
	require.NoError(t, s.RecordResult(2, TeamB))
	require.NoError(t, s.RecordResult(1, TeamB))
	g.Assert(t, "session_after_rotation", []byte(s.Snapshot().Dump()))

	s.SetAutoFill(true)
	s.ResetAll()
	g.Assert(t, "session_after_reset", []byte(s.Snapshot().Dump()))
}
