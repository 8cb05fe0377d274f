package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"puz_shelf/internal/app"
	"puz_shelf/internal/puz"

	"github.com/go-chi/chi/v5"
)

const sessionUploadsKey = "uploads"

type uploadResponse struct {
	Created bool            `json:"created"`
	Puzzle  *app.PuzzleView `json:"puzzle"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func isDecodeError(err error) bool {
	for _, target := range []error{
		puz.ErrMalformedHeader,
		puz.ErrTruncatedGrid,
		puz.ErrTruncatedStringTable,
		puz.ErrMalformedRebusTable,
		puz.ErrTruncatedExtension,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// readUpload accepts either a multipart form with a "file" field or the raw
// container as the request body.
func (s *Server) readUpload(r *http.Request) (string, []byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(s.MaxUploadBytes); err != nil {
			return "", nil, err
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		return header.Filename, data, err
	}

	data, err := io.ReadAll(r.Body)
	return r.URL.Query().Get("filename"), data, err
}

func (s *Server) handleUploadPuzzle(w http.ResponseWriter, r *http.Request) {
	filename, data, err := s.readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	p, created, err := s.Service.ImportPuzzle(r.Context(), filename, data)
	switch {
	case errors.Is(err, app.ErrUnsupportedFormat):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	case errors.Is(err, app.ErrHashConflict):
		writeError(w, http.StatusConflict, err.Error())
		return
	case isDecodeError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		log.Printf("Import failed: %v", err)
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}

	s.rememberUpload(r, p.ID)

	view, err := s.Service.GetPuzzle(r.Context(), p.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "loading puzzle failed")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, uploadResponse{Created: created, Puzzle: view})
}

func (s *Server) sessionUploads(r *http.Request) []string {
	raw := s.SessionManager.GetString(r.Context(), sessionUploadsKey)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func (s *Server) rememberUpload(r *http.Request, id string) {
	ids := s.sessionUploads(r)
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	ids = append(ids, id)
	s.SessionManager.Put(r.Context(), sessionUploadsKey, strings.Join(ids, ","))
}

func (s *Server) handleSessionPuzzles(w http.ResponseWriter, r *http.Request) {
	views := []*app.PuzzleView{}
	for _, id := range s.sessionUploads(r) {
		v, err := s.Service.GetPuzzle(r.Context(), id)
		if errors.Is(err, app.ErrNotFound) {
			continue
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "loading puzzles failed")
			return
		}
		views = append(views, v)
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	v, err := s.Service.GetPuzzle(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, app.ErrNotFound) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "loading puzzle failed")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type puzzleSummary struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Width    int64  `json:"width"`
	Height   int64  `json:"height"`
}

func queryInt(r *http.Request, key string, def, max int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20, 100)
	offset := queryInt(r, "offset", 0, 0)

	puzzles, err := s.Service.ListPuzzles(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing puzzles failed")
		return
	}

	out := make([]puzzleSummary, 0, len(puzzles))
	for _, p := range puzzles {
		out = append(out, puzzleSummary{
			ID:       p.ID,
			Filename: p.Filename,
			Title:    p.Title,
			Author:   p.Author,
			Width:    p.Width,
			Height:   p.Height,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
