// Package httpadapter exposes the interactive surface: browse stored
// documents, trigger the pipeline, inspect drafts, send replies, export the
// run log.
package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/payops/inquiry-reader/internal/core/domain"
	"github.com/payops/inquiry-reader/internal/core/ports"
)

// RunLogExporter renders the job history as workbook bytes.
type RunLogExporter interface {
	ExportRunLogXLSX(ctx context.Context, limit int) ([]byte, error)
}

type Router struct {
	lister      ports.DocumentLister
	starter     ports.InquiryStarter
	jobs        ports.JobReader
	sender      ports.DraftSender
	exporter    RunLogExporter
	runLogLimit int
}

func NewRouter(
	lister ports.DocumentLister,
	starter ports.InquiryStarter,
	jobs ports.JobReader,
	sender ports.DraftSender,
	exporter RunLogExporter,
	runLogLimit int,
) *Router {
	return &Router{
		lister:      lister,
		starter:     starter,
		jobs:        jobs,
		sender:      sender,
		exporter:    exporter,
		runLogLimit: runLogLimit,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.listDocuments)
	mux.HandleFunc("/v1/inquiries", rt.startInquiry)
	mux.HandleFunc("/v1/inquiries/", rt.inquiryByID)
	mux.HandleFunc("/v1/runlog/export", rt.exportRunLog)
	return requestIDMiddleware(accessLogMiddleware(mux))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	paths, err := rt.lister.ListDocuments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if paths == nil {
		paths = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": paths})
}

func (rt *Router) startInquiry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "path is required"})
		return
	}

	job, err := rt.starter.Start(r.Context(), req.Path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, job)
}

func (rt *Router) inquiryByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/inquiries/")
	if rest == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "job id is required"})
		return
	}

	if id, found := strings.CutSuffix(rest, "/send"); found {
		rt.sendDraft(w, r, id)
		return
	}
	rt.getJob(w, r, rest)
}

func (rt *Router) getJob(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	job, err := rt.jobs.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (rt *Router) sendDraft(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Recipient string `json:"recipient"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if err := rt.sender.SendDraft(r.Context(), id, req.Recipient); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.JobSent)})
}

func (rt *Router) exportRunLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	workbook, err := rt.exporter.ExportRunLogXLSX(r.Context(), rt.runLogLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="run_log.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(workbook)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		log.Printf("write run log response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
