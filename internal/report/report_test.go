package report

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evokit/internal/ga"
)

func sampleSummaries() []ga.Summary {
	return []ga.Summary{
		{Run: 0, Generations: 10, Objective: 2, Fitness: 68, Individual: "<1101>", Elapsed: 2 * time.Second},
		{Run: 1, Generations: 10, Objective: 4, Fitness: 66, Elapsed: 4 * time.Second},
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Progress(ga.Progress{Generation: 3, Objective: 1.5, Individual: "<10>"})
	c.Progress(ga.Progress{Generation: 4, Objective: 7})
	c.RunFinished(ga.Summary{Objective: 0, Individual: "<11>"})
	c.BatchFinished(sampleSummaries())

	want := "gen: 3; obj: 1.5; best ind.: <10>\n" +
		"gen: 4; obj: 7\n" +
		"<< FINISHED >> best obj: 0; best ind.: <11>\n" +
		"<<< Results >>>\n" +
		"<< Run 0 >> best obj: 2; best ind.: <1101>\n" +
		"<< Run 1 >> best obj: 4\n"
	assert.Equal(t, want, buf.String())
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))

	l.Progress(ga.Progress{Generation: 1})
	assert.Empty(t, buf.String(), "progress is debug output")

	l.BatchFinished(sampleSummaries())
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "batch finished", line["msg"])
	assert.Equal(t, 3.0, line["objective_mean"])
	assert.Equal(t, 1.0, line["objective_std"])
}

func TestMultiForwardsInOrder(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewConsole(&a), Nop{}, NewConsole(&b)}
	m.Progress(ga.Progress{Generation: 9, Objective: 1})
	m.RunFinished(ga.Summary{Objective: 1})
	m.BatchFinished(nil)

	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "gen: 9; obj: 1")
}

func TestAggregate(t *testing.T) {
	stats := Aggregate(sampleSummaries())
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 3.0, stats.ObjectiveMean)
	assert.Equal(t, 1.0, stats.ObjectiveStd)
	assert.Equal(t, 2.0, stats.ObjectiveMin)
	assert.Equal(t, 4.0, stats.ObjectiveMax)
	assert.Equal(t, 3.0, stats.ElapsedMean)

	assert.Equal(t, Stats{}, Aggregate(nil))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "logs", "progress.csv")
	jsonPath := filepath.Join(dir, "logs", "events.jsonl")

	f, err := NewFiles(csvPath, jsonPath)
	require.NoError(t, err)
	f.Progress(ga.Progress{Run: 1, Generation: 5, Objective: 3, Fitness: 67, Individual: "<1>"})
	f.RunFinished(sampleSummaries()[0])
	f.BatchFinished(sampleSummaries())
	require.NoError(t, f.Close())

	csvFile, err := os.Open(csvPath)
	require.NoError(t, err)
	defer csvFile.Close()
	rows, err := csv.NewReader(csvFile).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"run", "generation", "objective", "fitness", "best"},
		{"1", "5", "3", "67", "<1>"},
	}, rows)

	jsonFile, err := os.Open(jsonPath)
	require.NoError(t, err)
	defer jsonFile.Close()
	var events []map[string]any
	scanner := bufio.NewScanner(jsonFile)
	for scanner.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	require.Len(t, events, 4)
	assert.Equal(t, "progress", events[0]["event"])
	assert.Equal(t, "run_finished", events[1]["event"])
	assert.Equal(t, 2000.0, events[1]["elapsed_ms"])
	assert.Equal(t, 200.0, events[1]["ms_per_generation"])
	assert.Equal(t, "batch_result", events[3]["event"])
	assert.Equal(t, 1.0, events[3]["run"])
}

func TestFiles_OnlyCSV(t *testing.T) {
	f, err := NewFiles(filepath.Join(t.TempDir(), "p.csv"), "")
	require.NoError(t, err)
	f.RunFinished(ga.Summary{})
	assert.NoError(t, f.Err())
	assert.NoError(t, f.Close())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	m.Progress(ga.Progress{Run: 1, Generation: 12, Objective: 5, Fitness: 0.25})
	assert.Equal(t, 5.0, testutil.ToFloat64(m.BestObjective.WithLabelValues("1")))
	assert.Equal(t, 0.25, testutil.ToFloat64(m.BestFitness.WithLabelValues("1")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.Generation.WithLabelValues("1")))

	for _, s := range sampleSummaries() {
		m.RunFinished(s)
	}
	m.BatchFinished(sampleSummaries())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BestObjective.WithLabelValues("0")))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "metrics register only once per registry")
}

func TestChampionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions", "run0.json")
	ind := ga.NewIndividual[int, float64]([]int{0, 1, 1, 0})
	ind.Fitness = 1
	summary := ga.Summary{Run: 0, Generations: 40, Objective: 0, Fitness: 1, Individual: "<5, 5>"}

	require.NoError(t, SaveChampion(path, summary, ind))

	c, err := LoadChampion(path)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Generations)
	assert.Equal(t, "<5, 5>", c.Rendering)

	genes, err := DecodeGenome[int](c)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 0}, genes)

	_, err = DecodeGenome[bool](c)
	assert.Error(t, err)
}
