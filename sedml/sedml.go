// Package sedml defines the SED-ML collaborator surface the archive
// validation pipeline consumes: a document model listing tasks and
// outputs, and a Reader interface. A basic XML reader implementation is
// included so the pipeline and the execution-log builder can run
// unaided; per-model-language validation stays behind the Reader's
// validate-models flag and is supplied by callers.
package sedml

import (
	"github.com/biosimulators/omexkit/validation"
)

// Task is one simulation task of a SED-ML document.
type Task struct {
	// ID is the task identifier, unique within the document.
	ID string

	// Name is the optional human-readable name.
	Name string

	// ModelSource is the location of the model the task simulates,
	// relative to the document.
	ModelSource string

	// ModelLanguage is the URN of the model language, e.g.
	// urn:sedml:language:sbml.
	ModelLanguage string
}

// DataSet is one column of a report.
type DataSet struct {
	ID    string
	Label string
}

// Curve is one 2D curve of a plot.
type Curve struct {
	ID   string
	Name string
}

// Surface is one 3D surface of a plot.
type Surface struct {
	ID   string
	Name string
}

// OutputType discriminates the output variants of a document.
type OutputType string

const (
	OutputTypeReport OutputType = "report"
	OutputTypePlot2D OutputType = "plot2D"
	OutputTypePlot3D OutputType = "plot3D"
)

// Output is one output (report or plot) of a SED-ML document.
type Output struct {
	// ID is the output identifier, unique within the document.
	ID string

	// Name is the optional human-readable name.
	Name string

	// Type discriminates report, 2D plot, and 3D plot outputs.
	Type OutputType

	// DataSets are the columns of a report output.
	DataSets []DataSet

	// Curves are the curves of a 2D plot output.
	Curves []Curve

	// Surfaces are the surfaces of a 3D plot output.
	Surfaces []Surface
}

// Document is the parsed inventory of a SED-ML file.
type Document struct {
	// Level and Version identify the SED-ML release of the document.
	Level   int
	Version int

	// Tasks lists the document's simulation tasks.
	Tasks []*Task

	// Outputs lists the document's reports and plots.
	Outputs []*Output
}

// Reader parses and validates a SED-ML document. Implementations
// populate the returned findings with everything they recognized as
// wrong with the document; an error return is reserved for failures the
// implementation could not classify.
type Reader interface {
	// Run parses the document at filename. validateModels requests
	// validation of the models the document's tasks reference, in their
	// respective model languages.
	Run(filename string, validateModels bool) (*Document, []validation.Finding, []validation.Finding, error)
}

// ModelValidator checks one model file in a specific model language.
// Each supported language (SBML, CellML, BNGL, ...) wraps its own
// third-party validator behind this signature.
type ModelValidator func(filename string) ([]validation.Finding, []validation.Finding)
