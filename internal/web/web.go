package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/server"
	"github.com/desertthunder/beers/internal/shared"
	"github.com/desertthunder/beers/internal/tracker"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Route patterns served by [Handler].
const (
	RouteIndex         = "GET /{$}"
	RouteAdd           = "POST /beers"
	RouteConfirmDelete = "GET /beers/{id}/delete"
	RouteDelete        = "POST /beers/{id}/delete"
)

// Notices shown above the form after a redirect, keyed by the "notice" query value.
var notices = map[string]string{
	"missing": "Beer name and brewery are required.",
}

var _ server.Handler = (*Handler)(nil)

// Options configures the [Handler].
type Options struct {
	Dates         *shared.DateFormatter
	ConfirmDelete bool
	Logger        *log.Logger
}

// Handler serves the collection page and its form posts.
type Handler struct {
	tracker       *tracker.Tracker
	dates         *shared.DateFormatter
	confirmDelete bool
	logger        *log.Logger
}

// NewHandler creates a [Handler] backed by t.
func NewHandler(t *tracker.Tracker, opts Options) *Handler {
	if opts.Dates == nil {
		opts.Dates = shared.NewDateFormatter("")
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &Handler{tracker: t, dates: opts.Dates, confirmDelete: opts.ConfirmDelete, logger: opts.Logger}
}

// Routes implements [server.Handler].
func (h *Handler) Routes() []string {
	return []string{RouteIndex, RouteAdd, RouteConfirmDelete, RouteDelete}
}

// ServeHTTP dispatches on the pattern the mux matched.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Pattern {
	case RouteIndex:
		h.index(w, r)
	case RouteAdd:
		h.add(w, r)
	case RouteConfirmDelete:
		h.confirm(w, r)
	case RouteDelete:
		h.delete(w, r)
	default:
		http.NotFound(w, r)
	}
}

type page struct {
	Lang       string
	Title      string
	Subheading string
}

type star struct {
	Value int
	Label string
}

type card struct {
	ID          int
	Name        string
	Brewery     string
	Style       string
	Stars       string
	RatingText  string
	Notes       string
	Added       string
	DeleteLabel string
}

type indexPage struct {
	page
	Notice        string
	Heading       string
	Query         string
	Stars         []star
	Cards         []card
	Empty         string
	ConfirmDelete bool
}

type confirmPage struct {
	page
	ID     int
	Prompt string
}

func (h *Handler) newPage() page {
	return page{Lang: h.dates.Locale(), Title: models.Title, Subheading: models.Subheading}
}

func (h *Handler) newCard(b models.Beer) card {
	c := card{
		ID:          b.ID,
		Name:        b.Name,
		Brewery:     b.Brewery,
		Style:       b.Style,
		Notes:       b.Notes,
		Added:       h.dates.Format(b.DateAdded),
		DeleteLabel: b.DeleteLabel(),
	}
	if b.HasRating() {
		c.Stars = strings.Repeat("★", b.Rating)
		c.RatingText = models.RatingText(b.Rating)
	}
	return c
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	data := indexPage{
		page:          h.newPage(),
		Notice:        notices[r.URL.Query().Get("notice")],
		Heading:       h.tracker.Heading(),
		Query:         query,
		ConfirmDelete: h.confirmDelete,
	}
	for p := 1; p <= models.MaxRating; p++ {
		data.Stars = append(data.Stars, star{Value: p, Label: models.StarLabel(p)})
	}
	for _, b := range h.tracker.Filter(query) {
		data.Cards = append(data.Cards, h.newCard(b))
	}
	switch {
	case h.tracker.Count() == 0:
		data.Empty = models.EmptyMessage
	case len(data.Cards) == 0:
		data.Empty = fmt.Sprintf("No beers match %q.", query)
	}

	h.render(w, "index.html", data)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rating, _ := strconv.Atoi(r.PostForm.Get("rating"))
	in := models.BeerInput{
		Name:    r.PostForm.Get("name"),
		Brewery: r.PostForm.Get("brewery"),
		Style:   r.PostForm.Get("style"),
		Rating:  rating,
		Notes:   r.PostForm.Get("notes"),
	}
	if err := in.Validate(); err != nil {
		redirect(w, r, "missing")
		return
	}

	if _, err := h.tracker.Add(r.Context(), in); err != nil {
		h.saveFailed(w, r, err)
		return
	}
	redirect(w, r, "")
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := beerID(w, r)
	if !ok {
		return
	}

	beer, found := h.tracker.Get(id)
	if !found {
		http.NotFound(w, r)
		return
	}

	h.render(w, "confirm.html", confirmPage{page: h.newPage(), ID: id, Prompt: beer.DeleteLabel() + "?"})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := beerID(w, r)
	if !ok {
		return
	}

	if h.confirmDelete && r.FormValue("confirm") != "yes" {
		redirect(w, r, "")
		return
	}

	if _, err := h.tracker.Delete(r.Context(), id); err != nil {
		h.saveFailed(w, r, err)
		return
	}
	redirect(w, r, "")
}

// saveFailed answers 500. The change stays in memory until the next successful write.
func (h *Handler) saveFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to save collection", "error", err, "request_id", server.RequestIDFrom(r.Context()))
	http.Error(w, "failed to save your beer collection", http.StatusInternalServerError)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("failed to render template", "template", name, "error", err)
	}
}

func beerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid beer id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// redirect answers a form post with 303 to the collection, carrying notice when set.
func redirect(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/"
	if notice != "" {
		target += "?" + url.Values{"notice": {notice}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
