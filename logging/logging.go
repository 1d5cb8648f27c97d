package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Run is one match's worth of log files: a main log plus one transcript per
// agent, all under a timestamped directory.
type Run struct {
	Dir    string
	Main   *logrus.Logger
	Agents map[string]*logrus.Logger // keyed by player name

	files []*os.File
}

// AgentSpec names one agent's log file.
type AgentSpec struct {
	Player string
	Model  string
	Index  int // 1 or 2, disambiguates mirror matches of the same model
}

// Setup creates root/<game>/<timestamp>/ and opens main.log plus
// <model>_<index>.log for each agent.
func Setup(root, game string, agents []AgentSpec) (*Run, error) {
	dir := filepath.Join(root, game, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	run := &Run{Dir: dir, Agents: make(map[string]*logrus.Logger, len(agents))}

	main, f, err := fileLogger(filepath.Join(dir, "main.log"))
	if err != nil {
		return nil, err
	}
	run.Main = main
	run.files = append(run.files, f)

	for _, a := range agents {
		name := fmt.Sprintf("%s_%d.log", sanitize(a.Model), a.Index)
		lg, f, err := fileLogger(filepath.Join(dir, name))
		if err != nil {
			run.Close()
			return nil, err
		}
		run.Agents[a.Player] = lg
		run.files = append(run.files, f)
	}
	return run, nil
}

func fileLogger(path string) (*logrus.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lg := logrus.New()
	lg.SetOutput(f)
	lg.SetLevel(logrus.InfoLevel)
	lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return lg, f, nil
}

func (r *Run) Close() {
	for _, f := range r.files {
		_ = f.Close()
	}
}

// sanitize makes a model name safe as a file name; Ollama and router-style
// names can contain slashes and colons.
func sanitize(model string) string {
	repl := strings.NewReplacer("/", "-", ":", "-", " ", "_")
	return repl.Replace(model)
}
