package view

import (
	"html/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// title upper-cases the first letter of every word ("ganesh pooja" → "Ganesh Pooja").
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},
		"year": func() int {
			return time.Now().Year()
		},
	}
}
