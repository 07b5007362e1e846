package sedml

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biosimulators/omexkit/validation"
)

// XMLReader is the built-in SED-ML reader. It inventories tasks and
// outputs from the document XML and checks structural basics: ids must
// be present and unique, referenced models must exist. Model-language
// validation is delegated to the registered ModelValidator functions.
type XMLReader struct {
	// ModelValidators maps model-language URN prefixes (e.g.
	// "urn:sedml:language:sbml") to their validators. Languages without
	// an entry are skipped with a warning.
	ModelValidators map[string]ModelValidator
}

// NewXMLReader creates a reader with no model validators registered.
func NewXMLReader() *XMLReader {
	return &XMLReader{ModelValidators: map[string]ModelValidator{}}
}

// sedMLDocument mirrors the subset of the SED-ML schema the reader
// inventories.
type sedMLDocument struct {
	XMLName xml.Name `xml:"sedML"`
	Level   int      `xml:"level,attr"`
	Version int      `xml:"version,attr"`
	Models  []struct {
		ID       string `xml:"id,attr"`
		Source   string `xml:"source,attr"`
		Language string `xml:"language,attr"`
	} `xml:"listOfModels>model"`
	Tasks []struct {
		ID       string `xml:"id,attr"`
		Name     string `xml:"name,attr"`
		ModelRef string `xml:"modelReference,attr"`
	} `xml:"listOfTasks>task"`
	Reports []struct {
		ID       string `xml:"id,attr"`
		Name     string `xml:"name,attr"`
		DataSets []struct {
			ID    string `xml:"id,attr"`
			Label string `xml:"label,attr"`
		} `xml:"listOfDataSets>dataSet"`
	} `xml:"listOfOutputs>report"`
	Plots2D []struct {
		ID     string `xml:"id,attr"`
		Name   string `xml:"name,attr"`
		Curves []struct {
			ID   string `xml:"id,attr"`
			Name string `xml:"name,attr"`
		} `xml:"listOfCurves>curve"`
	} `xml:"listOfOutputs>plot2D"`
	Plots3D []struct {
		ID       string `xml:"id,attr"`
		Name     string `xml:"name,attr"`
		Surfaces []struct {
			ID   string `xml:"id,attr"`
			Name string `xml:"name,attr"`
		} `xml:"listOfSurfaces>surface"`
	} `xml:"listOfOutputs>plot3D"`
}

// Run parses the SED-ML document at filename.
func (r *XMLReader) Run(filename string, validateModels bool) (*Document, []validation.Finding, []validation.Finding, error) {
	var errors, warnings []validation.Finding

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read %s: %w", filename, err)
	}

	var raw sedMLDocument
	if err := xml.Unmarshal(data, &raw); err != nil {
		errors = append(errors, validation.Group(
			fmt.Sprintf("`%s` is not a valid SED-ML document", filename),
			[]validation.Finding{validation.New("%s", err)}))
		return nil, errors, warnings, nil
	}

	doc := &Document{Level: raw.Level, Version: raw.Version}

	models := map[string]struct{ source, language string }{}
	for _, m := range raw.Models {
		if m.ID == "" {
			errors = append(errors, validation.New("every model must have an id"))
			continue
		}
		models[m.ID] = struct{ source, language string }{m.Source, m.Language}
	}

	seenTasks := map[string]bool{}
	for _, t := range raw.Tasks {
		if t.ID == "" {
			errors = append(errors, validation.New("every task must have an id"))
			continue
		}
		if seenTasks[t.ID] {
			errors = append(errors, validation.New("task id `%s` is not unique", t.ID))
			continue
		}
		seenTasks[t.ID] = true

		task := &Task{ID: t.ID, Name: t.Name}
		if model, ok := models[t.ModelRef]; ok {
			task.ModelSource = model.source
			task.ModelLanguage = model.language
		} else if t.ModelRef != "" {
			errors = append(errors, validation.New(
				"task `%s` references undefined model `%s`", t.ID, t.ModelRef))
		}
		doc.Tasks = append(doc.Tasks, task)
	}

	seenOutputs := map[string]bool{}
	addOutput := func(o *Output) {
		if o.ID == "" {
			errors = append(errors, validation.New("every output must have an id"))
			return
		}
		if seenOutputs[o.ID] {
			errors = append(errors, validation.New("output id `%s` is not unique", o.ID))
			return
		}
		seenOutputs[o.ID] = true
		doc.Outputs = append(doc.Outputs, o)
	}

	for _, rep := range raw.Reports {
		out := &Output{ID: rep.ID, Name: rep.Name, Type: OutputTypeReport}
		for _, ds := range rep.DataSets {
			out.DataSets = append(out.DataSets, DataSet{ID: ds.ID, Label: ds.Label})
		}
		addOutput(out)
	}
	for _, plot := range raw.Plots2D {
		out := &Output{ID: plot.ID, Name: plot.Name, Type: OutputTypePlot2D}
		for _, c := range plot.Curves {
			out.Curves = append(out.Curves, Curve{ID: c.ID, Name: c.Name})
		}
		addOutput(out)
	}
	for _, plot := range raw.Plots3D {
		out := &Output{ID: plot.ID, Name: plot.Name, Type: OutputTypePlot3D}
		for _, s := range plot.Surfaces {
			out.Surfaces = append(out.Surfaces, Surface{ID: s.ID, Name: s.Name})
		}
		addOutput(out)
	}

	if validateModels {
		modelErrors, modelWarnings := r.validateModels(filename, doc)
		errors = append(errors, modelErrors...)
		warnings = append(warnings, modelWarnings...)
	}

	if len(errors) > 0 {
		return nil, errors, warnings, nil
	}
	return doc, errors, warnings, nil
}

// validateModels checks every model referenced by the document's tasks.
func (r *XMLReader) validateModels(filename string, doc *Document) ([]validation.Finding, []validation.Finding) {
	var errors, warnings []validation.Finding
	dir := filepath.Dir(filename)

	checked := map[string]bool{}
	for _, task := range doc.Tasks {
		if task.ModelSource == "" || checked[task.ModelSource] {
			continue
		}
		checked[task.ModelSource] = true

		modelPath := filepath.Join(dir, filepath.FromSlash(task.ModelSource))
		if _, err := os.Stat(modelPath); err != nil {
			errors = append(errors, validation.New(
				"model source `%s` does not exist", task.ModelSource))
			continue
		}

		validator := r.validatorFor(task.ModelLanguage)
		if validator == nil {
			warnings = append(warnings, validation.New(
				"model language `%s` cannot be validated", task.ModelLanguage))
			continue
		}
		modelErrors, modelWarnings := validator(modelPath)
		if len(modelErrors) > 0 {
			errors = append(errors, validation.Group(
				fmt.Sprintf("model `%s` is invalid", task.ModelSource), modelErrors))
		}
		if len(modelWarnings) > 0 {
			warnings = append(warnings, validation.Group(
				fmt.Sprintf("model `%s` may be invalid", task.ModelSource), modelWarnings))
		}
	}
	return errors, warnings
}

// validatorFor resolves a model-language URN to a registered validator
// by prefix match, tolerating version suffixes.
func (r *XMLReader) validatorFor(language string) ModelValidator {
	for prefix, validator := range r.ModelValidators {
		if strings.HasPrefix(language, prefix) {
			return validator
		}
	}
	return nil
}
