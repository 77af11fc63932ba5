package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/adapter/forwarder"
)

// RPCHandler relays JSON-RPC bodies to the configured upstream.
// A nil forwarder means no upstream is configured.
type RPCHandler struct {
	forwarder *forwarder.RPCForwarder
	log       *zap.Logger
}

// NewRPCHandler creates a new RPC passthrough handler
func NewRPCHandler(f *forwarder.RPCForwarder, log *zap.Logger) *RPCHandler {
	return &RPCHandler{forwarder: f, log: log}
}

// Forward handles POST /rpc
func (h *RPCHandler) Forward(c *gin.Context) {
	if h.forwarder == nil {
		respondDetail(c, http.StatusServiceUnavailable, "RPC upstream not configured")
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondDetail(c, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if !json.Valid(payload) {
		respondDetail(c, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	result, err := h.forwarder.Forward(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, forwarder.ErrUpstreamTimeout) {
			h.log.Warn("rpc upstream timed out")
			respondDetail(c, http.StatusServiceUnavailable, "Upstream timed out")
			return
		}
		h.log.Error("rpc upstream unreachable", zap.Error(err))
		respondDetail(c, http.StatusBadGateway, "Upstream request failed")
		return
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(result.StatusCode, contentType, result.Body)
}
