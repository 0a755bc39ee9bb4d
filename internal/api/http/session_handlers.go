package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/memodrill/memodrill/internal/auth/middleware"
	"github.com/memodrill/memodrill/internal/quiz"
	"github.com/memodrill/memodrill/internal/rbac"
)

func CreateSessionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuizID string `json:"quiz_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := authmw.SubjectFromContext(r.Context())
		if req.QuizID == "" || userID == "" {
			http.Error(w, "quiz_id and authenticated user required", 400)
			return
		}
		s, err := store.NewSession(req.QuizID, userID)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, s)
	}
}

func SaveAnswersHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var answers map[string]string
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if !ownsSession(store, r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		s, err := store.SaveAnswers(id, answers)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, s)
	}
}

func SubmitSessionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		if !ownsSession(store, r, id) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		s, err := store.Submit(id)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, s)
	}
}

func GetSessionHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.GetSession(chi.URLParam(r, "sessionID"))
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		if !canViewSession(r, s) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		writeJSON(w, s)
	}
}

func ListSessionsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := quiz.SessionListOpts{
			QuizID: strings.TrimSpace(r.URL.Query().Get("quiz_id")),
			UserID: strings.TrimSpace(r.URL.Query().Get("user_id")),
			Status: strings.TrimSpace(r.URL.Query().Get("status")),
			Limit:  parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset: parseIntDefault(r.URL.Query().Get("offset"), 0),
		}
		// Learners only ever see their own sessions.
		role := rbac.RoleFromContext(r.Context())
		if !rbac.NewChecker(nil).Has(role, "session:view-all") {
			opts.UserID = authmw.SubjectFromContext(r.Context())
		}
		list, err := store.ListSessions(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, list)
	}
}

func canViewSession(r *http.Request, s quiz.Session) bool {
	if authmw.SubjectFromContext(r.Context()) == s.UserID {
		return true
	}
	return rbac.NewChecker(nil).Has(rbac.RoleFromContext(r.Context()), "session:view-all")
}

// ownsSession guards mutation: only the session's learner may write to
// or submit it, with an escape hatch for roles holding
// session:manage-all (admins via the wildcard).
func ownsSession(store quiz.Store, r *http.Request, sessionID string) bool {
	s, err := store.GetSession(sessionID)
	if err != nil {
		// Let the store call report not-found with its usual error.
		return true
	}
	if authmw.SubjectFromContext(r.Context()) == s.UserID {
		return true
	}
	return rbac.NewChecker(nil).Has(rbac.RoleFromContext(r.Context()), "session:manage-all")
}
