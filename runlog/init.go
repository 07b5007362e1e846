package runlog

import (
	"github.com/biosimulators/omexkit/sedml"
)

// Features declares which SED-ML features a caller supports. Unsupported
// tasks and outputs enter the tree already skipped so the exported log
// distinguishes "not supported" from "never reached".
type Features struct {
	// SupportsTask reports whether the caller can execute the task. Nil
	// means every task is supported.
	SupportsTask func(*sedml.Task) bool

	// SupportsOutput reports whether the caller can produce the output.
	// Nil means every output is supported.
	SupportsOutput func(*sedml.Output) bool
}

// InitArchiveLog builds the log tree for a set of parsed SED-ML
// documents, keyed by their location in the archive. Every node starts
// queued except those ruled out by the feature declaration.
func InitArchiveLog(docs map[string]*sedml.Document, features Features) *CombineArchiveLog {
	archiveLog := NewCombineArchiveLog()

	for location, doc := range docs {
		docLog := NewSedDocumentLog(archiveLog, location)

		for _, task := range doc.Tasks {
			taskLog := NewTaskLog(docLog, task.ID)
			if features.SupportsTask != nil && !features.SupportsTask(task) {
				taskLog.Status = StatusSkipped
			}
		}

		for _, output := range doc.Outputs {
			outputLog := NewOutputLog(docLog, output.ID, outputKind(output.Type))
			switch output.Type {
			case sedml.OutputTypeReport:
				for _, ds := range output.DataSets {
					outputLog.DataSets[ds.ID] = StatusQueued
				}
			case sedml.OutputTypePlot2D:
				for _, c := range output.Curves {
					outputLog.Curves[c.ID] = StatusQueued
				}
			case sedml.OutputTypePlot3D:
				for _, s := range output.Surfaces {
					outputLog.Surfaces[s.ID] = StatusQueued
				}
			}
			if features.SupportsOutput != nil && !features.SupportsOutput(output) {
				outputLog.Status = StatusSkipped
				finalizeStatuses(outputLog.DataSets)
				finalizeStatuses(outputLog.Curves)
				finalizeStatuses(outputLog.Surfaces)
			}
		}
	}

	return archiveLog
}

func outputKind(t sedml.OutputType) OutputKind {
	switch t {
	case sedml.OutputTypePlot2D:
		return OutputKindPlot2D
	case sedml.OutputTypePlot3D:
		return OutputKindPlot3D
	default:
		return OutputKindReport
	}
}
