// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the page is re-rendered with:
//   - the values the user typed (echoed back)
//   - a per-field message next to each bad input
//   - a banner summarising the failure
//
// Embed Base in the page's view model:
//
//	type employeesData struct {
//		viewdata.BaseVM
//		formutil.Base
//		Form employeeForm
//	}
//
//	data.SetFieldErrors(inputval.Struct(&form), "Please fill in all required fields correctly")
package formutil

import (
	"html/template"

	"github.com/dalemusser/hrmslite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hrmslite/internal/app/system/inputval"
)

// Base contains the error state of a form page.
type Base struct {
	Error  template.HTML
	Fields inputval.FieldErrors
}

// SetError sets the page banner. msg may come from the backend and is
// stripped of markup.
func (b *Base) SetError(msg string) {
	b.Error = htmlsanitize.TextToHTML(msg)
}

// SetFieldErrors records per-field messages and, when there are any, the
// summary banner. It reports whether fe was non-empty.
func (b *Base) SetFieldErrors(fe inputval.FieldErrors, summary string) bool {
	if !fe.Any() {
		return false
	}
	b.Fields = fe
	b.SetError(summary)
	return true
}

// FieldError returns the message for a form field, for use in templates.
func (b Base) FieldError(field string) string {
	return b.Fields.Get(field)
}

// HasErrors reports whether the form has any error to show.
func (b Base) HasErrors() bool {
	return b.Error != "" || b.Fields.Any()
}
