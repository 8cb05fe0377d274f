package transport

import (
	"net/http"

	"puz_shelf/internal/app"

	"github.com/starfederation/datastar-go/datastar"
)

// handleImportEvents patches the "lastImport" signal every time a new puzzle
// is stored, until the client goes away.
func (s *Server) handleImportEvents(w http.ResponseWriter, r *http.Request) {
	events := make(chan app.ImportEvent, 8)
	unsubscribe, err := s.Service.SubscribeImports(func(ev app.ImportEvent) {
		select {
		case events <- ev:
		default:
			// slow client; it will see the next one
		}
	})
	if err != nil {
		http.Error(w, "event stream unavailable", http.StatusServiceUnavailable)
		return
	}
	defer unsubscribe()

	sse := datastar.NewSSE(w, r)
	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			if err := sse.MarshalAndPatchSignals(map[string]any{"lastImport": ev}); err != nil {
				return
			}
		}
	}
}
