package main

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Zachkp/folio/client"
	"github.com/Zachkp/folio/content"
)

// clientSettings are handed to the browser client through data attributes so
// both sides use the same configured values.
type clientSettings struct {
	NavLookahead        float64
	NavHeight           float64
	ScrolledThreshold   float64
	VisibilityThreshold float64
	BaseDurationMS      int64
}

type pageData struct {
	Title     string
	Path      string
	SiteURL   string
	Canonical string
	Year      int

	Site     *content.Site
	Sections []content.NavItem
	Contacts []content.ContactMethod
	Nav      client.NavState
	Client   clientSettings

	Legal   []LegalSection
	Updated string
}

var templateFuncs = template.FuncMap{
	"join":  strings.Join,
	"lower": strings.ToLower,
}

type renderer struct {
	tmpl  *template.Template
	cfg   *Config
	store *content.Store
}

func newRenderer(cfg *Config, store *content.Store) (*renderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &renderer{tmpl: tmpl, cfg: cfg, store: store}, nil
}

// page builds the data every page template shares. Layout offsets are only
// known in the browser, so the navigation starts on the first section.
func (r *renderer) page(path, title string) pageData {
	site := r.store.Site()
	sections := content.Sections(site)

	layout := make([]client.Section, len(sections))
	for i, s := range sections {
		layout[i] = client.Section{ID: s.ID}
	}
	nav := client.NewNav(r.cfg.NavLookahead, layout)

	if title == "" {
		title = site.Profile.Name + " | " + site.Profile.Title
	} else {
		title = title + " | " + site.Profile.Name
	}

	return pageData{
		Title:     title,
		Path:      path,
		SiteURL:   r.cfg.SiteURL,
		Canonical: r.cfg.SiteURL + path,
		Year:      time.Now().Year(),
		Site:      site,
		Sections:  sections,
		Contacts:  content.ContactMethods(site.Profile),
		Nav:       nav.State(),
		Client: clientSettings{
			NavLookahead:        r.cfg.NavLookahead,
			NavHeight:           r.cfg.NavHeight,
			ScrolledThreshold:   r.cfg.ScrolledThreshold,
			VisibilityThreshold: r.cfg.VisibilityThreshold,
			BaseDurationMS:      r.cfg.BaseDuration.Milliseconds(),
		},
	}
}

func (r *renderer) index() pageData { return r.page("/", "") }

func (r *renderer) privacy() pageData {
	d := r.page("/privacy", "Privacy Policy")
	d.Legal, d.Updated = PrivacySections, legalUpdated
	return d
}

func (r *renderer) terms() pageData {
	d := r.page("/terms", "Terms of Service")
	d.Legal, d.Updated = TermsSections, legalUpdated
	return d
}

// Render executes the named template into w.
func (r *renderer) Render(w io.Writer, name string, data any) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
