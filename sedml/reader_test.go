package sedml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosimulators/omexkit/validation"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/sed-ml/level1/version3" level="1" version="3">
  <listOfModels>
    <model id="model" source="model.xml" language="urn:sedml:language:sbml"/>
  </listOfModels>
  <listOfTasks>
    <task id="task_1" modelReference="model"/>
    <task id="task_2" modelReference="model"/>
  </listOfTasks>
  <listOfOutputs>
    <report id="report_1">
      <listOfDataSets>
        <dataSet id="ds_1" label="Time"/>
        <dataSet id="ds_2" label="X"/>
      </listOfDataSets>
    </report>
    <plot2D id="plot_1">
      <listOfCurves>
        <curve id="curve_1"/>
      </listOfCurves>
    </plot2D>
  </listOfOutputs>
</sedML>
`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestXMLReader_Run(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "sim.sedml", sampleDoc)
	writeDoc(t, dir, "model.xml", "<sbml/>")

	doc, errors, _, err := NewXMLReader().Run(path, false)
	require.NoError(t, err)
	require.Empty(t, errors)
	require.NotNil(t, doc)

	assert.Equal(t, 1, doc.Level)
	assert.Equal(t, 3, doc.Version)
	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "task_1", doc.Tasks[0].ID)
	assert.Equal(t, "model.xml", doc.Tasks[0].ModelSource)
	assert.Equal(t, "urn:sedml:language:sbml", doc.Tasks[0].ModelLanguage)

	require.Len(t, doc.Outputs, 2)
	assert.Equal(t, OutputTypeReport, doc.Outputs[0].Type)
	assert.Len(t, doc.Outputs[0].DataSets, 2)
	assert.Equal(t, OutputTypePlot2D, doc.Outputs[1].Type)
	assert.Len(t, doc.Outputs[1].Curves, 1)
}

func TestXMLReader_NotXML(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "sim.sedml", "not xml at all <")
	doc, errors, _, err := NewXMLReader().Run(path, false)
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.NotEmpty(t, errors)
}

func TestXMLReader_UndefinedModelReference(t *testing.T) {
	content := `<sedML level="1" version="3">
  <listOfTasks><task id="task_1" modelReference="nope"/></listOfTasks>
</sedML>`
	path := writeDoc(t, t.TempDir(), "sim.sedml", content)
	doc, errors, _, err := NewXMLReader().Run(path, false)
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.True(t, validation.AnyContains(errors, "undefined model"))
}

func TestXMLReader_ValidateModels(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "sim.sedml", sampleDoc)
	writeDoc(t, dir, "model.xml", "<sbml/>")

	reader := NewXMLReader()
	called := false
	reader.ModelValidators["urn:sedml:language:sbml"] = func(filename string) ([]validation.Finding, []validation.Finding) {
		called = true
		return nil, nil
	}

	_, errors, _, err := reader.Run(path, true)
	require.NoError(t, err)
	assert.Empty(t, errors)
	assert.True(t, called)
}

func TestXMLReader_MissingModelSource(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "sim.sedml", sampleDoc)
	// model.xml intentionally absent

	_, errors, _, err := NewXMLReader().Run(path, true)
	require.NoError(t, err)
	assert.True(t, validation.AnyContains(errors, "does not exist"))
}
