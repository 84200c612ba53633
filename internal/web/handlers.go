package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/shxntanu/tinysql/internal/storage"
)

// handleIndex serves a small landing page linking to the other views.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>tinysql inspector</title></head>
<body>
    <h1>tinysql inspector</h1>
    <p>Read-only view of a tinysql database file.</p>
    <ul>
        <li><a href="/rows">/rows</a>: every row, in id order</li>
        <li><a href="/tree">/tree</a>: B+ tree page structure</li>
        <li><a href="/constants">/constants</a>: node layout constants</li>
        <li><a href="/health">/health</a></li>
    </ul>
</body>
</html>`))
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

type rowsPage struct {
	Rows  []storage.Row
	Error string
	Hint  string
}

var rowsTemplate = template.Must(template.New("rows").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>rows - tinysql inspector</title>
    <style>
        body { font-family: system-ui, sans-serif; margin: 20px; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f4f4f4; }
        .error { color: red; }
        h1 a { color: inherit; text-decoration: none; }
    </style>
</head>
<body>
    <h1><a href="/">tinysql inspector</a> / rows</h1>
    {{if .Error}}
        <p class="error">{{.Error}}</p>
        {{if .Hint}}<p class="error">{{.Hint}}</p>{{end}}
    {{else if not .Rows}}
        <p>The table is empty.</p>
    {{else}}
        <table>
            <thead><tr><th>id</th><th>username</th><th>email</th></tr></thead>
            <tbody>
                {{range .Rows}}<tr><td>{{.ID}}</td><td>{{.Username}}</td><td>{{.Email}}</td></tr>{{end}}
            </tbody>
        </table>
    {{end}}
</body>
</html>`))

// handleRows renders every row in the table.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	page := rowsPage{}

	tree, mu := GetTree(r), GetMutex(r)
	if tree == nil {
		page.Error = "database not available"
	} else {
		mu.Lock()
		rows, err := tree.Rows()
		mu.Unlock()
		if err != nil {
			page.Error = fmt.Sprintf("scan failed: %v", err)
			page.Hint = GetErrorHint(page.Error)
		} else {
			page.Rows = rows
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if page.Error != "" {
		w.WriteHeader(http.StatusInternalServerError)
	}
	rowsTemplate.Execute(w, page)
}

type treePage struct {
	Dump  string
	Error string
	Hint  string
}

var treeTemplate = template.Must(template.New("tree").Parse(`<!DOCTYPE html>
<html>
<head><title>tree - tinysql inspector</title></head>
<body>
    <h1><a href="/">tinysql inspector</a> / tree</h1>
    {{if .Error}}
        <p style="color:red">{{.Error}}</p>
        {{if .Hint}}<p style="color:red">{{.Hint}}</p>{{end}}
    {{else}}<pre>{{.Dump}}</pre>{{end}}
</body>
</html>`))

// handleTree renders the .btree-style page dump.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	page := treePage{}

	tree, mu := GetTree(r), GetMutex(r)
	if tree == nil {
		page.Error = "database not available"
	} else {
		mu.Lock()
		dump, err := tree.DumpTree()
		mu.Unlock()
		if err != nil {
			page.Error = fmt.Sprintf("dump failed: %v", err)
			page.Hint = GetErrorHint(page.Error)
		} else {
			page.Dump = dump
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if page.Error != "" {
		w.WriteHeader(http.StatusInternalServerError)
	}
	treeTemplate.Execute(w, page)
}

var constantsTemplate = template.Must(template.New("constants").Parse(`<!DOCTYPE html>
<html>
<head><title>constants - tinysql inspector</title></head>
<body>
    <h1><a href="/">tinysql inspector</a> / constants</h1>
    <table>
        <tr><td>ROW_SIZE</td><td>{{.RowSize}}</td></tr>
        <tr><td>COMMON_NODE_HEADER_SIZE</td><td>{{.CommonNodeHeaderSize}}</td></tr>
        <tr><td>LEAF_NODE_HEADER_SIZE</td><td>{{.LeafNodeHeaderSize}}</td></tr>
        <tr><td>LEAF_NODE_CELL_SIZE</td><td>{{.LeafNodeCellSize}}</td></tr>
        <tr><td>LEAF_NODE_SPACE_FOR_CELLS</td><td>{{.LeafNodeSpaceForCells}}</td></tr>
        <tr><td>LEAF_NODE_MAX_CELLS</td><td>{{.LeafNodeMaxCells}}</td></tr>
        <tr><td>INTERNAL_NODE_HEADER_SIZE</td><td>{{.InternalNodeHeaderSize}}</td></tr>
        <tr><td>INTERNAL_NODE_CELL_SIZE</td><td>{{.InternalNodeCellSize}}</td></tr>
        <tr><td>INTERNAL_NODE_MAX_CELLS</td><td>{{.InternalNodeMaxCells}}</td></tr>
    </table>
</body>
</html>`))

// handleConstants renders the node layout constants. These never depend
// on the tree, so there's nothing to lock.
func (s *Server) handleConstants(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	constantsTemplate.Execute(w, storage.Describe())
}
