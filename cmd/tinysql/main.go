// Package main implements the CLI interface for tinysql.
//
// EDUCATIONAL NOTES:
// ------------------
// This is the entry point for the database CLI. It provides:
// 1. A REPL (Read-Eval-Print Loop) for the fixed insert/select grammar
// 2. Command-line flags for configuration
// 3. Dot-prefixed meta-commands for database introspection
// 4. An optional read-only HTTP inspector, running alongside the REPL
//
// The REPL pattern is common in interactive tools:
// - Read: Get a line from the user
// - Eval: Parse and execute it
// - Print: Display the result
// - Loop: Repeat until the user exits
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/shxntanu/tinysql/internal/command"
	"github.com/shxntanu/tinysql/internal/storage"
	"github.com/shxntanu/tinysql/internal/web"
)

const (
	version = "0.1.0"
	banner  = `
  _   _              ____   ___  _
 | |_(_)_ __  _   _ / ___| / _ \| |
 | __| | '_ \| | | |\___ \| | | | |
 | |_| | | | | |_| | ___) | |_| | |___
  \__|_|_| |_|\__, ||____/ \__\_\_____|
              |___/
  A Teaching B+ Tree Store - Version %s
  Type '.help' for usage hints or '.exit' to quit.
`
)

func main() {
	dbPath := flag.String("db", "tinysql.db", "path to the database file")
	httpAddr := flag.String("http", "", "if set, also serve a read-only HTTP inspector on this address (e.g. :8080)")
	showVersion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tinysql version %s\n", version)
		return
	}

	fmt.Printf(banner, version)

	pager, err := storage.NewPager(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer pager.Close()

	tree, err := storage.OpenTree(pager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		os.Exit(1)
	}

	// Guards tree/pager access between the REPL goroutine and, if enabled,
	// the HTTP inspector's handler goroutines. The core engine itself
	// assumes a single caller.
	var mu sync.Mutex

	if *httpAddr != "" {
		srv := web.NewServer(*httpAddr, tree, &mu)
		go func() {
			if err := srv.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "inspector server error: %v\n", err)
			}
		}()
		fmt.Printf("Read-only inspector listening on %s\n\n", *httpAddr)
	}

	repl(tree, pager, &mu)
}

// repl implements the Read-Eval-Print Loop.
func repl(tree *storage.Tree, pager *storage.Pager, mu *sync.Mutex) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("tinysql > ")

		line, err := reader.ReadString('\n')
		if err != nil {
			mu.Lock()
			exitGracefully(pager, mu, 0)
			return
		}
		line = strings.TrimRight(line, "\n\r")

		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			handleMetaCommand(line, tree, pager, mu)
			continue
		}

		mu.Lock()
		stmt, err := command.PrepareStatement(line)
		if err != nil {
			mu.Unlock()
			printPrepareError(err, line)
			continue
		}
		execErr := executeStatement(stmt, tree)
		mu.Unlock()

		if execErr != nil {
			printExecError(execErr)
			continue
		}
		fmt.Println("Executed.")
	}
}

func handleMetaCommand(line string, tree *storage.Tree, pager *storage.Pager, mu *sync.Mutex) {
	meta, err := command.PrepareMetaCommand(line)
	if err != nil {
		fmt.Printf("Unrecognized command '%s'\n", line)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	switch meta {
	case command.MetaExit:
		exitGracefully(pager, mu, 0)
	case command.MetaBTree:
		dump, err := tree.DumpTree()
		if err != nil {
			fmt.Printf("Error dumping tree: %v\n", err)
			return
		}
		fmt.Print(dump)
	case command.MetaConstants:
		printConstants(storage.Describe())
	case command.MetaHelp:
		printHelp()
	}
}

// exitGracefully flushes the pager and terminates the process. mu is
// already held by the caller; we never return, so there's no unlock to
// forget.
func exitGracefully(pager *storage.Pager, mu *sync.Mutex, code int) {
	if err := pager.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing database: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func executeStatement(stmt command.Statement, tree *storage.Tree) error {
	switch stmt.Type {
	case command.StatementInsert:
		return tree.Insert(stmt.RowToInsert)
	case command.StatementSelect:
		rows, err := tree.Rows()
		if err != nil {
			return err
		}
		for _, row := range rows {
			fmt.Printf("(%d, %s, %s)\n", row.ID, row.Username, row.Email)
		}
		return nil
	}
	return nil
}

func printPrepareError(err error, line string) {
	switch err {
	case command.ErrSyntax:
		fmt.Println("Syntax Error. Could not parse statement.")
	case command.ErrNegativeID:
		fmt.Println("ID must be positive.")
	case command.ErrStringTooLong:
		fmt.Println("String is too long.")
	case command.ErrUnrecognizedStatement:
		fmt.Printf("Unrecognized keyword at start of '%s'.\n", line)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func printExecError(err error) {
	switch err {
	case storage.ErrDuplicateKey:
		fmt.Println("Error: Duplicate Key.")
	default:
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func printConstants(c storage.Constants) {
	fmt.Println("Constants:")
	fmt.Printf("ROW_SIZE: %d\n", c.RowSize)
	fmt.Printf("COMMON_NODE_HEADER_SIZE: %d\n", c.CommonNodeHeaderSize)
	fmt.Printf("LEAF_NODE_HEADER_SIZE: %d\n", c.LeafNodeHeaderSize)
	fmt.Printf("LEAF_NODE_CELL_SIZE: %d\n", c.LeafNodeCellSize)
	fmt.Printf("LEAF_NODE_SPACE_FOR_CELLS: %d\n", c.LeafNodeSpaceForCells)
	fmt.Printf("LEAF_NODE_MAX_CELLS: %d\n", c.LeafNodeMaxCells)
	fmt.Printf("INTERNAL_NODE_HEADER_SIZE: %d\n", c.InternalNodeHeaderSize)
	fmt.Printf("INTERNAL_NODE_CELL_SIZE: %d\n", c.InternalNodeCellSize)
	fmt.Printf("INTERNAL_NODE_MAX_CELLS: %d\n", c.InternalNodeMaxCells)
}

func printHelp() {
	fmt.Println("\nStatements:")
	fmt.Println("  insert <id> <username> <email>   insert a row")
	fmt.Println("  select                            print every row, in id order")
	fmt.Println("\nMeta-commands:")
	fmt.Println("  .exit        flush and close the database, then quit")
	fmt.Println("  .btree       dump the B+ tree's page structure")
	fmt.Println("  .constants   dump the node layout constants")
	fmt.Println("  .help        show this message")
	fmt.Println()
}
