// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the site's HTML pages.
//
// A views directory looks like:
//
//	layouts/base.html   defines "base", the page skeleton
//	partials/*.html     shared fragments ("header", "footer", ...)
//	<page>.html         defines "content" (and optionally "title")
//
// Every page is parsed together with the layout and the partials, and
// rendered by executing "base".
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pooja-site/internal/logger"
)

const (
	layoutTemplate = "base"
	layoutFile     = "layouts/base.html"
	partialsGlob   = "partials/*.html"
	pageExt        = ".html"

	htmlContentType = "text/html; charset=utf-8"
)

// Renderer holds the parsed page set. Render is safe for concurrent use,
// including while a reload swaps the set.
type Renderer struct {
	dir    string
	logger *logger.Logger

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewRenderer parses every page under dir. A broken template fails here,
// at startup, not on the first request.
func NewRenderer(dir string, log *logger.Logger) (*Renderer, error) {
	r := &Renderer{
		dir:    dir,
		logger: log,
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// Reload re-parses the views directory. On error the previous set is kept.
func (r *Renderer) Reload() error {
	pages, err := parsePages(r.dir)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()

	r.logger.Debug().Str("dir", r.dir).Strs("pages", names(pages)).Msg("templates parsed")
	return nil
}

// Render executes page name with data and writes it with status. Nothing is
// written when lookup or execution fails; the error is returned instead.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	r.mu.RLock()
	tmpl, ok := r.pages[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, layoutTemplate, data); err != nil {
		return fmt.Errorf("error rendering %q: %w", name, err)
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Has reports whether page name exists.
func (r *Renderer) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pages[name]
	return ok
}

func parsePages(dir string) (map[string]*template.Template, error) {
	layout := filepath.Join(dir, filepath.FromSlash(layoutFile))
	if _, err := os.Stat(layout); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoLayout, err)
	}

	base, err := template.New(layoutTemplate).Funcs(templateFuncs()).ParseFiles(layout)
	if err != nil {
		return nil, fmt.Errorf("error parsing layout: %w", err)
	}

	partials, err := filepath.Glob(filepath.Join(dir, filepath.FromSlash(partialsGlob)))
	if err != nil {
		return nil, err
	}
	if len(partials) > 0 {
		if base, err = base.ParseFiles(partials...); err != nil {
			return nil, fmt.Errorf("error parsing partials: %w", err)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+pageExt))
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), pageExt)

		page, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err = page.ParseFiles(file); err != nil {
			return nil, fmt.Errorf("error parsing page %q: %w", name, err)
		}
		pages[name] = page
	}

	return pages, nil
}

func names(pages map[string]*template.Template) []string {
	out := make([]string, 0, len(pages))
	for name := range pages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
