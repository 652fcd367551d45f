/*
   TruthVerifier - social media content credibility verifier
   Copyright (C) 2025  Unbewohnte (Kasyanov Nikolay Alexeevich)

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package web

import (
	"Unbewohnte/TruthVerifier/internal/verification"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Verifier - то, что веб-сервер умеет от оркестратора
type Verifier interface {
	Verify(ctx context.Context, request verification.Request) verification.Result
	CheckInferenceServer(ctx context.Context) (verification.HealthReport, int)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type requestIDKey struct{}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type WebServer struct {
	verifier  Verifier
	hub       *Hub
	staticDir string
}

func NewWebServer(verifier Verifier, staticDir string) *WebServer {
	return &WebServer{
		verifier:  verifier,
		hub:       NewHub(),
		staticDir: staticDir,
	}
}

func (ws *WebServer) Hub() *Hub {
	return ws.hub
}

func (ws *WebServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(withRequestID)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", ws.handleAnalyze).Methods(http.MethodGet)
	api.HandleFunc("/verify-reel", ws.handleVerifyReel).Methods(http.MethodPost)

	// WebSocket endpoint
	r.HandleFunc("/ws", ws.hub.handleWebSocket)

	// Static files
	if ws.staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(ws.staticDir)))
	}

	return r
}

// Run обслуживает запросы, пока не отменен ctx, затем мягко завершает работу
func (ws *WebServer) Run(ctx context.Context, port uint, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           ws.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Web server started on %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Не удалось записать ответ: %v", err)
	}
}

func (ws *WebServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	report, status := ws.verifier.CheckInferenceServer(r.Context())
	writeJSON(w, status, report)
}

// decodeRequest требует, чтобы тело было ровно одним JSON-значением
func decodeRequest(body io.Reader) (verification.Request, error) {
	var request verification.Request

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&request); err != nil {
		return request, err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return request, errors.New("unexpected data after JSON body")
	}

	return request, nil
}

func (ws *WebServer) handleVerifyReel(w http.ResponseWriter, r *http.Request) {
	id := RequestID(r.Context())

	request, err := decodeRequest(r.Body)
	if err != nil {
		log.Printf("[%s] Error verifying reel: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to process reel",
			Message: err.Error(),
		})
		return
	}

	log.Printf("[%s] Analyzing URL: %s", id, request.URL)
	ws.hub.SendLog(id, "Analyzing URL: "+request.URL)

	result := ws.verifier.Verify(r.Context(), request)

	ws.hub.SendAnalysis(id, verification.FormatResult(request.URL, result))
	writeJSON(w, http.StatusOK, result)
}
