package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"evokit/internal/ga"
)

// Files writes progress rows to a CSV file and every observation as a JSON
// line. Either path may be empty to skip that file.
type Files struct {
	mu        sync.Mutex
	csvPath   string
	jsonPath  string
	csvFile   *os.File
	csvWriter *csv.Writer
	jsonFile  *os.File
	encoder   *json.Encoder
	err       error
}

// NewFiles creates the output directories and opens both files
func NewFiles(csvPath, jsonPath string) (*Files, error) {
	f := &Files{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}
	if err := f.init(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (f *Files) init() error {
	if f.csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(f.csvPath), 0755); err != nil {
			return err
		}
		file, err := os.Create(f.csvPath)
		if err != nil {
			return err
		}
		f.csvFile = file
		f.csvWriter = csv.NewWriter(file)

		header := []string{"run", "generation", "objective", "fitness", "best"}
		if err := f.csvWriter.Write(header); err != nil {
			return err
		}
	}

	if f.jsonPath != "" {
		if err := os.MkdirAll(filepath.Dir(f.jsonPath), 0755); err != nil {
			return err
		}
		file, err := os.OpenFile(f.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		f.jsonFile = file
		f.encoder = json.NewEncoder(file)
	}
	return nil
}

// Close flushes and closes all files and returns the first write error seen
func (f *Files) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.csvWriter != nil {
		f.csvWriter.Flush()
		f.keep(f.csvWriter.Error())
	}
	if f.csvFile != nil {
		f.keep(f.csvFile.Close())
	}
	if f.jsonFile != nil {
		f.keep(f.jsonFile.Close())
	}
	return f.err
}

// Err returns the first write error seen so far
func (f *Files) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Files) keep(err error) {
	if err != nil && f.err == nil {
		f.err = err
	}
}

type progressLine struct {
	Event      string  `json:"event"`
	Run        int     `json:"run"`
	Generation int     `json:"generation"`
	Objective  float64 `json:"objective"`
	Fitness    float64 `json:"fitness"`
	Best       string  `json:"best,omitempty"`
}

type summaryLine struct {
	Event       string  `json:"event"`
	Run         int     `json:"run"`
	Generations int     `json:"generations"`
	Objective   float64 `json:"objective"`
	Fitness     float64 `json:"fitness"`
	Best        string  `json:"best,omitempty"`
	ElapsedMS   int64   `json:"elapsed_ms"`
	MSPerGen    float64 `json:"ms_per_generation"`
}

func (f *Files) Progress(p ga.Progress) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.csvWriter != nil {
		row := []string{
			strconv.Itoa(p.Run),
			strconv.Itoa(p.Generation),
			strconv.FormatFloat(p.Objective, 'g', -1, 64),
			strconv.FormatFloat(p.Fitness, 'g', -1, 64),
			p.Individual,
		}
		f.keep(f.csvWriter.Write(row))
		f.csvWriter.Flush()
		f.keep(f.csvWriter.Error())
	}
	f.encode(progressLine{
		Event:      "progress",
		Run:        p.Run,
		Generation: p.Generation,
		Objective:  p.Objective,
		Fitness:    p.Fitness,
		Best:       p.Individual,
	})
}

func (f *Files) RunFinished(s ga.Summary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.encode(newSummaryLine("run_finished", s))
}

func (f *Files) BatchFinished(results []ga.Summary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range results {
		f.encode(newSummaryLine("batch_result", s))
	}
}

func (f *Files) encode(v any) {
	if f.encoder == nil {
		return
	}
	f.keep(f.encoder.Encode(v))
}

func newSummaryLine(event string, s ga.Summary) summaryLine {
	var perGen float64
	if s.Generations > 0 {
		perGen = float64(s.Elapsed.Microseconds()) / 1000 / float64(s.Generations)
	}
	return summaryLine{
		Event:       event,
		Run:         s.Run,
		Generations: s.Generations,
		Objective:   s.Objective,
		Fitness:     s.Fitness,
		Best:        s.Individual,
		ElapsedMS:   s.Elapsed.Milliseconds(),
		MSPerGen:    perGen,
	}
}
