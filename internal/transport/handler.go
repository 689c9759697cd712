// Package transport exposes the node operations over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/powledger/internal/chain/model"
	"github.com/goodnatureofminers/powledger/internal/chain/service"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

type (
	mineResponse struct {
		Message      string              `json:"message"`
		Index        uint64              `json:"index"`
		Transactions []model.Transaction `json:"transactions"`
		Proof        uint64              `json:"proof"`
		PreviousHash string              `json:"previous_hash"`
	}
	transactionResponse struct {
		Message string `json:"message"`
		Index   uint64 `json:"index"`
	}
	registerRequest struct {
		Nodes []string `json:"nodes"`
	}
	registerResponse struct {
		Message    string   `json:"message"`
		TotalNodes []string `json:"total_nodes"`
	}
	resolveResponse struct {
		Message  string        `json:"message"`
		Chain    []model.Block `json:"chain,omitempty"`
		NewChain []model.Block `json:"new_chain,omitempty"`
	}
	errorResponse struct {
		Message string `json:"message"`
	}
)

// NodeHandler serves the node HTTP API.
type NodeHandler struct {
	node    Node
	metrics HTTPMetrics
	logger  *zap.Logger
	mux     *http.ServeMux
}

// NewNodeHandler registers every route of the node API.
func NewNodeHandler(node Node, metrics HTTPMetrics, logger *zap.Logger) *NodeHandler {
	h := &NodeHandler{
		node:    node,
		metrics: metrics,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	h.handle("GET /chain", h.chain)
	h.handle("POST /transactions/new", h.newTransaction)
	h.handle("GET /mine", h.mine)
	h.handle("POST /nodes/register", h.registerNodes)
	h.handle("GET /nodes/resolve", h.resolve)
	return h
}

// Handler returns the API wrapped with CORS.
func (h *NodeHandler) Handler() http.Handler {
	return cors.Default().Handler(h.mux)
}

// Mux exposes the route table so callers can mount extra handlers such as /metrics.
func (h *NodeHandler) Mux() *http.ServeMux {
	return h.mux
}

func (h *NodeHandler) handle(route string, fn func(w http.ResponseWriter, r *http.Request) (int, any, error)) {
	h.mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		code, body, err := fn(w, r)
		if err != nil {
			code = statusOf(err)
			body = errorResponse{Message: err.Error()}
			if code >= http.StatusInternalServerError {
				h.logger.Error("request failed", zap.String("route", route), zap.Error(err))
			} else {
				h.logger.Debug("request rejected", zap.String("route", route), zap.Int("code", code), zap.Error(err))
			}
		}
		h.write(w, code, body)
		h.metrics.ObserveRequest(route, code, started)
	})
}

func (h *NodeHandler) write(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func (h *NodeHandler) chain(_ http.ResponseWriter, r *http.Request) (int, any, error) {
	return http.StatusOK, h.node.Chain(r.Context()), nil
}

func (h *NodeHandler) newTransaction(w http.ResponseWriter, r *http.Request) (int, any, error) {
	var req service.TransactionRequest
	if err := decode(w, r, &req); err != nil {
		return 0, nil, err
	}
	index, err := h.node.SubmitTransaction(r.Context(), req)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, transactionResponse{
		Message: fmt.Sprintf("Transaction will be added to Block %d", index),
		Index:   index,
	}, nil
}

func (h *NodeHandler) mine(_ http.ResponseWriter, r *http.Request) (int, any, error) {
	block, err := h.node.Mine(r.Context())
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, mineResponse{
		Message:      "New Block forged.",
		Index:        block.Index,
		Transactions: block.Transactions,
		Proof:        block.Proof,
		PreviousHash: block.PreviousHash,
	}, nil
}

func (h *NodeHandler) registerNodes(w http.ResponseWriter, r *http.Request) (int, any, error) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil {
		return 0, nil, err
	}
	if req.Nodes == nil {
		return 0, nil, fmt.Errorf("%w: please supply a valid list of nodes", model.ErrMissingField)
	}
	peers, err := h.node.RegisterNodes(r.Context(), req.Nodes)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, registerResponse{
		Message:    "New nodes have been added",
		TotalNodes: peers,
	}, nil
}

func (h *NodeHandler) resolve(_ http.ResponseWriter, r *http.Request) (int, any, error) {
	replaced, chain, err := h.node.ResolveConflicts(r.Context())
	if err != nil {
		return 0, nil, err
	}
	if replaced {
		return http.StatusOK, resolveResponse{Message: "Our chain was replaced", NewChain: chain}, nil
	}
	return http.StatusOK, resolveResponse{Message: "The main chain is authoritative", Chain: chain}, nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(v); err != nil {
		return fmt.Errorf("%w: request body: %v", model.ErrInvalidField, err)
	}
	return nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrMissingField),
		errors.Is(err, model.ErrInvalidField),
		errors.Is(err, model.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrStaleProof):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
