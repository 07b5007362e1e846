package combine

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/araddon/dateparse"

	"github.com/biosimulators/omexkit/identifiers"
	"github.com/biosimulators/omexkit/omexmeta"
	"github.com/biosimulators/omexkit/sedml"
	"github.com/biosimulators/omexkit/validation"
	"github.com/biosimulators/omexkit/vocabulary"
)

// Validator runs the archive-level validation pipeline: content checks,
// SED-ML execution-set selection, and delegation into the SED-ML reader
// for every document that should execute.
type Validator struct {
	// SedmlReader validates the selected SED-ML documents.
	SedmlReader sedml.Reader

	// ValidateModels forwards model-language validation into the SED-ML
	// reader.
	ValidateModels bool

	// RunAllWithoutMaster selects every SED-ML content entry for
	// execution when no entry is flagged master.
	RunAllWithoutMaster bool
}

// NewValidator creates a validator with the default SED-ML reader and
// every SED-ML document selected when no master is flagged.
func NewValidator() *Validator {
	return &Validator{
		SedmlReader:         sedml.NewXMLReader(),
		RunAllWithoutMaster: true,
	}
}

// Run validates the archive against the directory its contents were
// extracted into. Findings accumulate; only an unexpected SED-ML reader
// failure that the reader did not itself report becomes an error return.
func (v *Validator) Run(a *Archive, workingDir string) ([]validation.Finding, []validation.Finding, error) {
	var errors, warnings []validation.Finding

	if len(a.Contents) == 0 {
		errors = append(errors, validation.New(
			"the archive must have at least one content element"))
	}

	for i, c := range a.Contents {
		var contentErrors []validation.Finding
		if c == nil {
			errors = append(errors, validation.Group(
				fmt.Sprintf("content %d is invalid", i+1),
				[]validation.Finding{validation.New("the content must be a content element")}))
			continue
		}

		if c.Location == "" {
			contentErrors = append(contentErrors, validation.New(
				"the content must have a location"))
		} else {
			local := filepath.Join(workingDir, filepath.FromSlash(normalizeLocation(c.Location)))
			if info, err := os.Stat(local); err != nil || info.IsDir() {
				contentErrors = append(contentErrors, validation.New(
					"`%s` is not a file in the archive", c.Location))
			}
		}
		if c.Format == "" {
			contentErrors = append(contentErrors, validation.New(
				"the content must have a format"))
		} else if _, ok := ClassifyFormat(c.Format); !ok {
			contentErrors = append(contentErrors, validation.New(
				"`%s` is not a recognized content format", c.Format))
		}

		if len(contentErrors) > 0 {
			label := c.Location
			if label == "" {
				label = fmt.Sprintf("content %d", i+1)
			}
			errors = append(errors, validation.Group(
				fmt.Sprintf("`%s` is invalid", label), contentErrors))
		}
	}

	toExecute := v.SedmlToExecute(a)
	if len(toExecute) == 0 {
		warnings = append(warnings, validation.New(
			"the archive does not contain any SED-ML files that should be executed"))
	}

	for _, c := range toExecute {
		docErrors, docWarnings, err := v.validateSedml(c, workingDir)
		if err != nil {
			return nil, nil, err
		}
		errors = append(errors, docErrors...)
		warnings = append(warnings, docWarnings...)
	}

	return errors, warnings, nil
}

// SedmlToExecute computes the SED-ML content entries that should be
// executed: the master SED-ML entries if any entry is flagged master,
// otherwise (configurably) every SED-ML entry.
func (v *Validator) SedmlToExecute(a *Archive) []*Content {
	masters := a.MasterContent()
	if len(masters) > 0 {
		var out []*Content
		for _, c := range masters {
			if MatchesFormat(c.Format, FormatSEDML) {
				out = append(out, c)
			}
		}
		return out
	}
	if v.RunAllWithoutMaster {
		return a.ContentsByFormat(FormatSEDML)
	}
	return nil
}

// validateSedml delegates one document to the SED-ML reader, grafting
// its findings under the document's location. A reader failure is
// swallowed only when the reader reported the cause itself.
func (v *Validator) validateSedml(c *Content, workingDir string) ([]validation.Finding, []validation.Finding, error) {
	path := filepath.Join(workingDir, filepath.FromSlash(normalizeLocation(c.Location)))

	_, docErrors, docWarnings, err := v.SedmlReader.Run(path, v.ValidateModels)
	if err != nil && len(docErrors) == 0 {
		return nil, nil, fmt.Errorf("validate %s: %w", c.Location, err)
	}

	var errors, warnings []validation.Finding
	if len(docErrors) > 0 {
		errors = append(errors, validation.Group(
			fmt.Sprintf("`%s` is invalid", c.Location), docErrors))
	}
	if len(docWarnings) > 0 {
		warnings = append(warnings, validation.Group(
			fmt.Sprintf("`%s` may be invalid", c.Location), docWarnings))
	}
	return errors, warnings, nil
}

// ValidateMetadata cross-checks one projected metadata record: required
// attributes for the archive-describing record, URL and identifier
// well-formedness, thumbnail existence and format, and date parsing.
// Checks accumulate; none short-circuits the others.
func ValidateMetadata(m *omexmeta.Metadata, a *Archive, workingDir string) ([]validation.Finding, []validation.Finding) {
	var errors, warnings []validation.Finding

	if m.IsArchiveRecord() {
		for _, attr := range vocabulary.AttributeOrder {
			pt, ok := vocabulary.Primary(attr)
			if !ok || !pt.Required {
				continue
			}
			if attributeEmpty(m, pt) {
				errors = append(errors, validation.New(
					"%s (%s) is required", pt.Attribute, pt.Predicate))
			}
		}
	}

	for _, uri := range metadataURIs(m) {
		parsed, err := url.ParseRequestURI(uri)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errors = append(errors, validation.New("`%s` is not a valid URL", uri))
			continue
		}
		if handled, err := identifiers.Validate(uri); handled && err != nil {
			errors = append(errors, validation.New("`%s` is not a valid identifier: %s", uri, err))
		}
	}

	if len(m.Thumbnails) > 0 {
		if workingDir == "" {
			warnings = append(warnings, validation.New(
				"thumbnails could not be validated because no working directory was provided"))
		} else {
			errors = append(errors, validateThumbnails(m.Thumbnails, a, workingDir)...)
		}
	}

	if m.Created != "" {
		if _, err := dateparse.ParseAny(m.Created); err != nil {
			errors = append(errors, validation.New(
				"created date `%s` is not a valid date", m.Created))
		}
	}
	for _, modified := range m.Modified {
		if _, err := dateparse.ParseAny(modified); err != nil {
			errors = append(errors, validation.New(
				"modified date `%s` is not a valid date", modified))
		}
	}

	return errors, warnings
}

func validateThumbnails(thumbnails []string, a *Archive, workingDir string) []validation.Finding {
	var errors []validation.Finding
	for _, thumbnail := range thumbnails {
		local := filepath.Join(workingDir, filepath.FromSlash(normalizeLocation(thumbnail)))
		if _, err := os.Stat(local); err != nil {
			errors = append(errors, validation.New(
				"thumbnail `%s` is not a file in the archive", thumbnail))
			continue
		}
		if a == nil {
			continue
		}

		found := false
		for _, c := range a.Contents {
			if normalizeLocation(c.Location) != normalizeLocation(thumbnail) {
				continue
			}
			found = true
			if !IsThumbnailFormat(c.Format) {
				errors = append(errors, validation.New(
					"thumbnail `%s` does not have a valid image format", thumbnail))
			}
			break
		}
		if !found {
			errors = append(errors, validation.New(
				"thumbnail `%s` is not declared in the archive manifest", thumbnail))
		}
	}
	return errors
}

// attributeEmpty reports whether a table attribute has no value on the
// record, honoring the declared URI/label shape.
func attributeEmpty(m *omexmeta.Metadata, pt vocabulary.PredicateType) bool {
	switch {
	case pt.HasURI && pt.HasLabel:
		return len(m.IdentifierValues(pt.Attribute)) == 0
	case pt.HasURI:
		return len(m.URIValues(pt.Attribute)) == 0
	default:
		return len(m.LabelValues(pt.Attribute)) == 0
	}
}

// metadataURIs collects every URI-valued entry on the record, including
// the generic "other" statements.
func metadataURIs(m *omexmeta.Metadata) []string {
	var out []string
	for _, attr := range vocabulary.AttributeOrder {
		pt, ok := vocabulary.Primary(attr)
		if !ok || !pt.HasURI {
			continue
		}
		if pt.HasLabel {
			for _, value := range m.IdentifierValues(attr) {
				if value.URI != "" {
					out = append(out, value.URI)
				}
			}
		}
	}
	for _, stmt := range m.Other {
		if stmt.URI != "" {
			out = append(out, stmt.URI)
		}
	}
	return out
}
