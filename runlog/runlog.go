// Package runlog models the execution log tree of a COMBINE archive
// run: archive, documents, tasks, and outputs, each with a status that
// follows a fixed lifecycle and a finalize sweep that prevents persisted
// logs from reporting in-progress states after a crash.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Filename is the fixed name of the exported log file.
const Filename = "log.yml"

// Status is the execution state of one log node.
type Status string

const (
	StatusQueued    Status = "QUEUED"
	StatusRunning   Status = "RUNNING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusSkipped   Status = "SKIPPED"
	StatusFailed    Status = "FAILED"
)

// Failure records why a node failed or was skipped. Failures are plain
// values; a live error never crosses the serialization boundary.
type Failure struct {
	Kind    string `yaml:"type" json:"type"`
	Message string `yaml:"message" json:"message"`
}

// NewFailure captures an error as a failure value.
func NewFailure(kind string, err error) *Failure {
	return &Failure{Kind: kind, Message: err.Error()}
}

// Log is the state shared by every node of the tree.
type Log struct {
	Status     Status   `yaml:"status"`
	Exception  *Failure `yaml:"exception"`
	SkipReason *Failure `yaml:"skipReason"`
	Output     string   `yaml:"output"`
	Duration   *float64 `yaml:"duration"`

	// OutDir is the directory the log file is written to. Only
	// meaningful on the node that owns the physical file.
	OutDir string `yaml:"-"`
}

// finalize maps in-progress states to their terminal equivalents:
// a queued node was never reached, a running node crashed mid-task.
func (l *Log) finalize() {
	switch l.Status {
	case StatusQueued:
		l.Status = StatusSkipped
	case StatusRunning:
		l.Status = StatusFailed
	}
}

func finalizeStatuses(statuses map[string]Status) {
	for id, status := range statuses {
		switch status {
		case StatusQueued:
			statuses[id] = StatusSkipped
		case StatusRunning:
			statuses[id] = StatusFailed
		}
	}
}

// Node is one node of the log tree.
type Node interface {
	base() *Log
	parentNode() Node

	// Finalize applies the terminal-state sweep to the node and, for
	// containers, to every child regardless of the node's own state.
	Finalize()
}

// CombineArchiveLog is the root of the tree.
type CombineArchiveLog struct {
	Log       `yaml:",inline"`
	RunID     string                    `yaml:"runId"`
	Documents map[string]*SedDocumentLog `yaml:"sedDocuments"`
}

// NewCombineArchiveLog creates a queued archive log with a fresh run id.
func NewCombineArchiveLog() *CombineArchiveLog {
	return &CombineArchiveLog{
		Log:       Log{Status: StatusQueued},
		RunID:     uuid.NewString(),
		Documents: map[string]*SedDocumentLog{},
	}
}

func (l *CombineArchiveLog) base() *Log       { return &l.Log }
func (l *CombineArchiveLog) parentNode() Node { return nil }

// Finalize finalizes the archive and every document beneath it.
func (l *CombineArchiveLog) Finalize() {
	l.finalize()
	for _, doc := range l.Documents {
		doc.Finalize()
	}
}

// Export writes the tree to the log file.
func (l *CombineArchiveLog) Export() error { return export(l) }

// SedDocumentLog is the per-document container, keyed by location in the
// archive log.
type SedDocumentLog struct {
	Log      `yaml:",inline"`
	Location string                `yaml:"location"`
	Tasks    map[string]*TaskLog   `yaml:"tasks"`
	Outputs  map[string]*OutputLog `yaml:"outputs"`

	Parent *CombineArchiveLog `yaml:"-"`
}

// NewSedDocumentLog creates a queued document log attached to its parent.
func NewSedDocumentLog(parent *CombineArchiveLog, location string) *SedDocumentLog {
	doc := &SedDocumentLog{
		Log:      Log{Status: StatusQueued},
		Location: location,
		Tasks:    map[string]*TaskLog{},
		Outputs:  map[string]*OutputLog{},
		Parent:   parent,
	}
	if parent != nil {
		parent.Documents[location] = doc
	}
	return doc
}

func (l *SedDocumentLog) base() *Log { return &l.Log }

func (l *SedDocumentLog) parentNode() Node {
	if l.Parent == nil {
		return nil
	}
	return l.Parent
}

// Finalize finalizes the document then all of its tasks and outputs,
// even when the document itself ends skipped.
func (l *SedDocumentLog) Finalize() {
	l.finalize()
	for _, task := range l.Tasks {
		task.Finalize()
	}
	for _, output := range l.Outputs {
		output.Finalize()
	}
}

// Export writes the full tree to the log file.
func (l *SedDocumentLog) Export() error { return export(l) }

// TaskLog records one task's execution.
type TaskLog struct {
	Log       `yaml:",inline"`
	ID        string `yaml:"id"`
	Algorithm string `yaml:"algorithm,omitempty"`

	Parent *SedDocumentLog `yaml:"-"`
}

// NewTaskLog creates a queued task log attached to its parent.
func NewTaskLog(parent *SedDocumentLog, id string) *TaskLog {
	task := &TaskLog{
		Log:    Log{Status: StatusQueued},
		ID:     id,
		Parent: parent,
	}
	if parent != nil {
		parent.Tasks[id] = task
	}
	return task
}

func (l *TaskLog) base() *Log { return &l.Log }

func (l *TaskLog) parentNode() Node {
	if l.Parent == nil {
		return nil
	}
	return l.Parent
}

// Finalize finalizes the task.
func (l *TaskLog) Finalize() { l.finalize() }

// Export writes the full tree to the log file.
func (l *TaskLog) Export() error { return export(l) }

// OutputKind distinguishes the output log variants.
type OutputKind string

const (
	OutputKindReport OutputKind = "report"
	OutputKindPlot2D OutputKind = "plot2D"
	OutputKindPlot3D OutputKind = "plot3D"
)

// OutputLog records one output's execution. Reports track per-data-set
// statuses; plots track per-curve or per-surface statuses. The leaf
// statuses carry no further structure.
type OutputLog struct {
	Log      `yaml:",inline"`
	ID       string            `yaml:"id"`
	Kind     OutputKind        `yaml:"kind"`
	DataSets map[string]Status `yaml:"dataSets,omitempty"`
	Curves   map[string]Status `yaml:"curves,omitempty"`
	Surfaces map[string]Status `yaml:"surfaces,omitempty"`

	Parent *SedDocumentLog `yaml:"-"`
}

// NewOutputLog creates a queued output log attached to its parent.
func NewOutputLog(parent *SedDocumentLog, id string, kind OutputKind) *OutputLog {
	output := &OutputLog{
		Log:    Log{Status: StatusQueued},
		ID:     id,
		Kind:   kind,
		Parent: parent,
	}
	switch kind {
	case OutputKindReport:
		output.DataSets = map[string]Status{}
	case OutputKindPlot2D:
		output.Curves = map[string]Status{}
	case OutputKindPlot3D:
		output.Surfaces = map[string]Status{}
	}
	if parent != nil {
		parent.Outputs[id] = output
	}
	return output
}

func (l *OutputLog) base() *Log { return &l.Log }

func (l *OutputLog) parentNode() Node {
	if l.Parent == nil {
		return nil
	}
	return l.Parent
}

// Finalize finalizes the output and its leaf statuses.
func (l *OutputLog) Finalize() {
	l.finalize()
	finalizeStatuses(l.DataSets)
	finalizeStatuses(l.Curves)
	finalizeStatuses(l.Surfaces)
}

// Export writes the full tree to the log file.
func (l *OutputLog) Export() error { return export(l) }

// export serializes the root of n's tree into the log file of the
// nearest ancestor (including n) that owns an output directory. Any node
// can trigger a full-tree flush.
func export(n Node) error {
	outDir := ""
	for cur := n; cur != nil; cur = cur.parentNode() {
		if cur.base().OutDir != "" {
			outDir = cur.base().OutDir
			break
		}
	}
	if outDir == "" {
		return fmt.Errorf("no node in the log tree has an output directory")
	}

	root := n
	for root.parentNode() != nil {
		root = root.parentNode()
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(outDir, Filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
