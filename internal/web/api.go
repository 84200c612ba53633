// Package web - JSON API endpoints for programmatic access.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/shxntanu/tinysql/internal/storage"
)

// APIResponse wraps every API response with success/error info.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RowsResponse contains every row in the table.
type RowsResponse struct {
	Rows  []storage.Row `json:"rows"`
	Count int           `json:"count"`
}

// TreeResponse is the JSON form of storage.Walk's output.
type TreeResponse struct {
	Nodes []NodeView `json:"nodes"`
}

// NodeView is the JSON-friendly projection of storage.NodeInfo.
type NodeView struct {
	PageNum  uint32   `json:"page_num"`
	Depth    int      `json:"depth"`
	Type     string   `json:"type"`
	NumCells uint32   `json:"num_cells"`
	Keys     []uint32 `json:"keys,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: false, Error: message})
}

// handleAPIRows returns every row as JSON.
// GET /api/rows
func (s *Server) handleAPIRows(w http.ResponseWriter, r *http.Request) {
	mu := GetMutex(r)
	mu.Lock()
	rows, err := GetTree(r).Rows()
	mu.Unlock()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeSuccess(w, RowsResponse{Rows: rows, Count: len(rows)})
}

// handleAPITree returns the tree's page structure as JSON.
// GET /api/tree
func (s *Server) handleAPITree(w http.ResponseWriter, r *http.Request) {
	mu := GetMutex(r)
	mu.Lock()
	infos, err := GetTree(r).Walk()
	mu.Unlock()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, err.Error())
		return
	}

	nodes := make([]NodeView, len(infos))
	for i, info := range infos {
		typeName := "internal"
		if info.Type == storage.NodeLeaf {
			typeName = "leaf"
		}
		nodes[i] = NodeView{
			PageNum:  info.PageNum,
			Depth:    info.Depth,
			Type:     typeName,
			NumCells: info.NumCells,
			Keys:     info.Keys,
		}
	}
	writeSuccess(w, TreeResponse{Nodes: nodes})
}

// handleAPIConstants returns the node layout constants as JSON.
// GET /api/constants
func (s *Server) handleAPIConstants(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, storage.Describe())
}
