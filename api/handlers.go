package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsieve/docsieve/layout"
	"github.com/docsieve/docsieve/pipeline"
	"github.com/docsieve/docsieve/reader"
)

// handleOutline extracts the title and heading outline of a single
// uploaded document.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	dir, err := os.MkdirTemp("", "docsieve-outline-*")
	if err != nil {
		jsonError(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(dir)

	path, err := s.saveUpload(dir, header.Filename, file)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rd, err := reader.Open(path)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc, err := rd.Read()
	if err != nil {
		s.log.Error("outline read failed", "file", header.Filename, "error", err)
		jsonError(w, "failed to read document", http.StatusUnprocessableEntity)
		return
	}

	assembly := layout.NewAssembler().Assemble(doc)
	writeJSON(w, http.StatusOK, assembly.Outline)
}

// handleRank processes an uploaded collection: a role, a task, and one
// or more documents, returning the merged ranked-section record.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	role := r.FormValue("role")
	task := r.FormValue("task")
	if role == "" && task == "" {
		jsonError(w, "role or task is required", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	dir, err := os.MkdirTemp("", "docsieve-rank-*")
	if err != nil {
		jsonError(w, "failed to stage uploads", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(dir)

	input := &pipeline.CollectionInput{
		Persona: pipeline.PersonaSpec{Role: role},
		Job:     pipeline.JobSpec{Task: task},
	}
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			jsonError(w, "failed to read upload: "+err.Error(), http.StatusBadRequest)
			return
		}
		path, err := s.saveUpload(dir, header.Filename, f)
		f.Close()
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		input.Documents = append(input.Documents, pipeline.InputDocument{
			Filename: filepath.Base(path),
		})
	}

	output, results, err := s.runner.ProcessCollection(r.Context(), input, dir)
	if err != nil {
		s.log.Error("rank failed", "error", err)
		jsonError(w, "processing failed", http.StatusInternalServerError)
		return
	}
	for _, result := range results {
		if result.Err != nil {
			s.log.Warn("document skipped", "document", result.Name, "error", result.Err)
		}
	}

	writeJSON(w, http.StatusOK, output)
}

// saveUpload writes one multipart file into the staging directory
// under its sanitized base name.
func (s *Server) saveUpload(dir, filename string, src multipart.File) (string, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to stage %s", name)
	}
	defer dst.Close()

	n, err := io.Copy(dst, io.LimitReader(src, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to stage %s", name)
	}
	if n > s.cfg.MaxUploadBytes {
		return "", fmt.Errorf("%s exceeds max size (%d bytes)", name, s.cfg.MaxUploadBytes)
	}
	return path, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." {
		return ""
	}
	return name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
