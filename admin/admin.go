package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sort"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"classwindow/auth"
	"classwindow/models"
	"classwindow/store"
)

// Server exposes the read-only reporting views over the school document.
// Everything here is pure projection: it aggregates whatever the document
// says at request time and never mutates it.
type Server struct {
	st *store.Store
}

func NewServer(st *store.Store) *Server {
	return &Server{st: st}
}

// Handler builds the admin router with CORS and request logging applied
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	public := r.PathPrefix("/api/admin").Subrouter()
	public.HandleFunc("/login", auth.LoginHandler).Methods(http.MethodPost)

	protected := r.PathPrefix("/api/admin").Subrouter()
	protected.Use(auth.RequireAdmin)
	protected.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	protected.HandleFunc("/schools", s.handleSchools).Methods(http.MethodGet)
	protected.HandleFunc("/homework", s.handleHomework).Methods(http.MethodGet)
	protected.HandleFunc("/templates", s.handleTemplates).Methods(http.MethodGet)
	protected.HandleFunc("/distribution", s.handleDistribution).Methods(http.MethodGet)

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return gorillaHandlers.LoggingHandler(os.Stdout, corsHandler(r))
}

// Stats is the dashboard headline card
type Stats struct {
	TotalSchools   int `json:"totalSchools"`
	TotalClasses   int `json:"totalClasses"`
	TotalHomework  int `json:"totalHomework"`
	TotalTemplates int `json:"totalTemplates"`
}

// ClassSummary describes one class without exposing its password
type ClassSummary struct {
	ClassCode     string `json:"classCode"`
	HomeworkCount int    `json:"homeworkCount"`
	TemplateCount int    `json:"templateCount"`
	LastUpdated   int64  `json:"lastUpdated"`
}

// SchoolSummary describes one school and its classes
type SchoolSummary struct {
	SchoolCode    string         `json:"schoolCode"`
	ClassCount    int            `json:"classCount"`
	HomeworkCount int            `json:"homeworkCount"`
	TemplateCount int            `json:"templateCount"`
	Classes       []ClassSummary `json:"classes"`
}

// HomeworkEntry is one homework annotated with where it lives
type HomeworkEntry struct {
	models.Homework
	School string `json:"school"`
	Class  string `json:"class"`
}

// TemplateEntry is one template annotated with where it lives
type TemplateEntry struct {
	models.Template
	School string `json:"school"`
	Class  string `json:"class"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w)
	if !ok {
		return
	}

	var stats Stats
	stats.TotalSchools = len(doc)
	for _, school := range doc {
		stats.TotalClasses += len(school.Classes)
		for _, cls := range school.Classes {
			stats.TotalHomework += len(cls.HomeworkData)
			stats.TotalTemplates += len(cls.Templates)
		}
	}

	writeJSON(w, stats)
}

func (s *Server) handleSchools(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w)
	if !ok {
		return
	}

	summaries := make([]SchoolSummary, 0, len(doc))
	for _, schoolCode := range sortedKeys(doc) {
		school := doc[schoolCode]
		summary := SchoolSummary{SchoolCode: schoolCode, ClassCount: len(school.Classes)}
		for _, classCode := range sortedClassKeys(school.Classes) {
			cls := school.Classes[classCode]
			summary.HomeworkCount += len(cls.HomeworkData)
			summary.TemplateCount += len(cls.Templates)
			summary.Classes = append(summary.Classes, ClassSummary{
				ClassCode:     classCode,
				HomeworkCount: len(cls.HomeworkData),
				TemplateCount: len(cls.Templates),
				LastUpdated:   cls.LastUpdated,
			})
		}
		summaries = append(summaries, summary)
	}

	writeJSON(w, summaries)
}

func (s *Server) handleHomework(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w)
	if !ok {
		return
	}

	entries := []HomeworkEntry{}
	for _, schoolCode := range sortedKeys(doc) {
		school := doc[schoolCode]
		for _, classCode := range sortedClassKeys(school.Classes) {
			for _, hw := range school.Classes[classCode].HomeworkData {
				entries = append(entries, HomeworkEntry{Homework: hw, School: schoolCode, Class: classCode})
			}
		}
	}

	writeJSON(w, entries)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w)
	if !ok {
		return
	}

	entries := []TemplateEntry{}
	for _, schoolCode := range sortedKeys(doc) {
		school := doc[schoolCode]
		for _, classCode := range sortedClassKeys(school.Classes) {
			for _, tpl := range school.Classes[classCode].Templates {
				entries = append(entries, TemplateEntry{Template: tpl, School: schoolCode, Class: classCode})
			}
		}
	}

	writeJSON(w, entries)
}

// handleDistribution returns per-school homework counts; schools with no
// homework are omitted so the charts stay uncluttered.
func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.load(w)
	if !ok {
		return
	}

	counts := map[string]int{}
	for schoolCode, school := range doc {
		total := 0
		for _, cls := range school.Classes {
			total += len(cls.HomeworkData)
		}
		if total > 0 {
			counts[schoolCode] = total
		}
	}

	writeJSON(w, counts)
}

func (s *Server) load(w http.ResponseWriter) (models.SchoolDocument, bool) {
	doc, err := s.st.Load()
	if err != nil {
		log.Printf("admin: storage error: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "storage operation failed"})
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func sortedKeys(doc models.SchoolDocument) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedClassKeys(classes map[string]*models.ClassRecord) []string {
	keys := make([]string, 0, len(classes))
	for k := range classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
