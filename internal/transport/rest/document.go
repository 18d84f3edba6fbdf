package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
	"github.com/heartmarshall/grammar-assistant/pkg/ctxutil"
)

// uploadField is the multipart field carrying the document.
const uploadField = "file"

// documentPipeline defines the minimal interface needed by DocumentHandler.
type documentPipeline interface {
	CorrectDocument(ctx context.Context, filename string, data []byte) (*domain.CorrectedDocument, error)
}

// DocumentHandler serves document uploads.
type DocumentHandler struct {
	pipeline documentPipeline
	maxBytes int64
	log      *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler that rejects request bodies
// larger than maxBytes.
func NewDocumentHandler(pipeline documentPipeline, maxBytes int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		pipeline: pipeline,
		maxBytes: maxBytes,
		log:      logger.With("handler", "document"),
	}
}

// Upload handles POST /upload-document. The corrected document is returned
// as an attachment in the format it was uploaded in.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, tooLargeMessage(h.maxBytes))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, tooLargeMessage(h.maxBytes))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(w, r, h.log, fmt.Errorf("read upload: %w", err))
		return
	}

	ctx := ctxutil.WithDocument(r.Context(), header.Filename)
	doc, err := h.pipeline.CorrectDocument(ctx, header.Filename, data)
	if err != nil {
		handleError(w, r.WithContext(ctx), h.log, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Data) //nolint:errcheck
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("file too large (max %d bytes)", limit)
}
