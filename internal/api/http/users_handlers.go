package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type upsertUser struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Role     string `json:"role"` // learner|author|admin
}

// POST /users/bulk  [{"id":"...","password":"...","role":"learner"}, ...]
func BulkUpsertUsersHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var users []upsertUser
		if err := json.NewDecoder(r.Body).Decode(&users); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		now := time.Now().Unix()
		count := 0
		for _, u := range users {
			if u.ID == "" || u.Password == "" {
				continue
			}
			role := u.Role
			if role == "" {
				role = "learner"
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			_, err = db.Exec(`INSERT INTO users (id,password_hash,role,created_at)
				VALUES ($1,$2,$3,$4)
				ON CONFLICT (id) DO UPDATE SET password_hash=EXCLUDED.password_hash, role=EXCLUDED.role`,
				u.ID, string(hash), role, now)
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			count++
		}
		writeJSON(w, map[string]int{"upserted": count})
	}
}
