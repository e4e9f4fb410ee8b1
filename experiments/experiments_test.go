package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"temple/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	res, err := Run(Options{
		Name:   "smoke",
		Agents: []string{"random", "cautious"},
		Games:  3,
		Seed:   11,
		Board:  game.DefaultBoard(),
		OutDir: out,
	})
	require.NoError(t, err)
	require.Len(t, res.Records, 6)
	require.NotNil(t, res.Final)
	require.Equal(t, filepath.Join(out, "smoke"), filepath.Dir(res.Dir))

	games := readCSV(t, filepath.Join(res.Dir, "game_records.csv"))
	require.Len(t, games, 7, "header plus one row per game")
	require.Equal(t, "id", games[0][0])
	require.Equal(t, 2, res.Records[5].Agent)
	require.Equal(t, "cautious", res.Records[5].GameMetric.Agent)

	configs := readCSV(t, filepath.Join(res.Dir, "agent_configs.csv"))
	require.Equal(t, []string{"2", "cautious", "11"}, configs[2])

	turns := readCSV(t, filepath.Join(res.Dir, "turn_records.csv"))
	total := 0
	for _, r := range res.Records {
		total += r.Turns
	}
	require.Len(t, turns, total+1)

	t.Run("unknown agent", func(t *testing.T) {
		_, err := Run(Options{Agents: []string{"oracle"}, Games: 1, Board: game.DefaultBoard(), OutDir: t.TempDir()})
		require.Error(t, err)
	})
}

func TestRunThroughput(t *testing.T) {
	tp, err := RunThroughput("random", 4, 8, 1, game.DefaultBoard())
	require.NoError(t, err)
	require.Equal(t, 8, tp.Games)
	require.Positive(t, tp.Inputs)
	require.Equal(t, 4, tp.Workers)

	t.Run("no games is an error", func(t *testing.T) {
		for _, games := range []int{0, -3} {
			tp, err := RunThroughput("random", 2, games, 1, game.DefaultBoard())
			require.Error(t, err, "games=%d", games)
			require.Zero(t, tp.Games)
		}
	})
}
