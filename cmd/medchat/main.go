package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/comigor/medchat-go/internal/config"
	"github.com/comigor/medchat-go/internal/dispatch"
	"github.com/comigor/medchat-go/internal/doctor"
	"github.com/comigor/medchat-go/internal/health"
	"github.com/comigor/medchat-go/internal/history"
	"github.com/comigor/medchat-go/internal/identity"
	"github.com/comigor/medchat-go/internal/logger"
	"github.com/comigor/medchat-go/internal/remote"
	"github.com/comigor/medchat-go/internal/store"
)

// defaultRoster is used when the config lists no doctors.
var defaultRoster = []doctor.Doctor{
	{ID: "dr-house", DisplayName: "Dr. Gregory House", Specialty: "General Practitioner", Presence: doctor.PresenceOnline},
	{ID: "dr-grey", DisplayName: "Dr. Meredith Grey", Specialty: "Cardiology", Presence: doctor.PresenceOnline},
	{ID: "dr-wilson", DisplayName: "Dr. James Wilson", Specialty: "Gastroenterologist", Presence: doctor.PresenceBusy},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)

	roster := defaultRoster
	if len(cfg.Doctors) > 0 {
		roster = make([]doctor.Doctor, 0, len(cfg.Doctors))
		for _, d := range cfg.Doctors {
			roster = append(roster, doctor.Doctor{
				ID:          d.ID,
				DisplayName: d.DisplayName,
				Specialty:   d.Specialty,
				Presence:    doctor.PresenceOnline,
			})
		}
	}
	byID := make(map[string]doctor.Doctor, len(roster))
	for _, d := range roster {
		byID[d.ID] = d
	}

	idp := identity.StaticProvider{Token: cfg.Remote.APIKey}
	channel := remote.New(cfg.Remote, idp)
	tracker := health.NewTracker()
	mirror := history.NewMirror(config.HistoryDSN())
	orch := dispatch.New(store.New(), channel, tracker, mirror)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /doctors", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, roster)
	})

	mux.HandleFunc("POST /chat/{doctorID}", func(w http.ResponseWriter, r *http.Request) {
		doc, ok := byID[r.PathValue("doctorID")]
		if !ok {
			http.Error(w, "unknown doctor", http.StatusNotFound)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.L.Error("read body error", "error", err)
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		orch.Send(r.Context(), doc, string(body))
		w.WriteHeader(http.StatusAccepted)
	})

	mux.HandleFunc("GET /chat/{doctorID}", func(w http.ResponseWriter, r *http.Request) {
		doc, ok := byID[r.PathValue("doctorID")]
		if !ok {
			http.Error(w, "unknown doctor", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{
			"messages": orch.Messages(doc),
			"typing":   orch.Typing(doc.ID),
			"health":   orch.Health(),
			"presence": doctor.PresenceText(doc, time.Now()),
		})
	})

	mux.HandleFunc("DELETE /chat/{doctorID}", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := byID[r.PathValue("doctorID")]; !ok {
			http.Error(w, "unknown doctor", http.StatusNotFound)
			return
		}
		orch.Clear(r.PathValue("doctorID"))
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("POST /retry", func(w http.ResponseWriter, r *http.Request) {
		state := orch.RetryConnection(context.Background())
		writeJSON(w, map[string]any{"health": state})
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.L.Info("starting server", "address", serverAddr)
	if err := http.ListenAndServe(serverAddr, mux); err != nil {
		logger.L.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L.Error("encode response error", "error", err)
	}
}
