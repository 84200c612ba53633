// Package storage - Pager component.
//
// EDUCATIONAL NOTES:
// ------------------
// The Pager is responsible for managing the database file and reading and
// writing pages. It acts as a layer between the B+ tree and the file
// system.
//
// Key responsibilities:
// 1. Opening/creating the database file
// 2. Reading pages from disk into memory, lazily, on first access
// 3. Allocating new page numbers monotonically from the tail of the file
// 4. Writing every loaded page back to disk at Close
//
// There is no eviction and no dirty tracking: every loaded page is flushed
// at Close regardless of whether it was actually modified. The cache is
// bounded only by TableMaxPages.
package storage

import (
	"fmt"
	"os"
)

// Pager owns the database file descriptor and the in-memory page cache.
type Pager struct {
	file     *os.File
	filePath string

	// numPages is the number of pages that exist, on disk or allocated in
	// memory but not yet flushed. Page numbers are dense: pages
	// 0..numPages-1 exist.
	numPages uint32

	// cache holds the pages that have been loaded this session, indexed
	// by page number. A nil entry means the slot has never been touched.
	cache [TableMaxPages]*page
}

// NewPager opens or creates the database file at filePath with read/write
// permissions and derives the initial page count from its length.
func NewPager(filePath string) (*Pager, error) {
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open database file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("storage: failed to stat database file: %w", err)
	}

	fileLength := stat.Size()
	if fileLength%PageSize != 0 {
		file.Close()
		return nil, fmt.Errorf("storage: corrupt file: length %d is not a multiple of page size %d", fileLength, PageSize)
	}

	return &Pager{
		file:     file,
		filePath: filePath,
		numPages: uint32(fileLength / PageSize),
	}, nil
}

// PageCount returns the total number of pages, on disk plus newly
// allocated-but-unflushed ones.
func (p *Pager) PageCount() uint32 {
	return p.numPages
}

// GetPage returns the page buffer for pageNum, loading it from disk on
// first access. The returned pointer is the cache's own buffer: callers
// mutate it in place.
func (p *Pager) GetPage(pageNum uint32) (*page, error) {
	if pageNum >= TableMaxPages {
		return nil, fmt.Errorf("storage: page number %d out of range (max %d)", pageNum, TableMaxPages-1)
	}

	if cached := p.cache[pageNum]; cached != nil {
		return cached, nil
	}

	pg := newPage()
	if pageNum < p.numPages {
		offset := int64(pageNum) * PageSize
		if _, err := p.file.ReadAt(pg[:], offset); err != nil {
			return nil, fmt.Errorf("storage: failed to read page %d: %w", pageNum, err)
		}
	} else {
		p.numPages = pageNum + 1
	}

	p.cache[pageNum] = pg
	return pg, nil
}

// AllocatePage reserves the next page number at the tail of the file. The
// page is not materialized until GetPage is called for it.
func (p *Pager) AllocatePage() uint32 {
	return p.numPages
}

// Flush writes the full PageSize bytes of pageNum to disk. Flushing a
// page that was never loaded is a programmer error.
func (p *Pager) Flush(pageNum uint32) error {
	pg := p.cache[pageNum]
	if pg == nil {
		return fmt.Errorf("storage: attempted to flush page %d, which was never loaded", pageNum)
	}

	offset := int64(pageNum) * PageSize
	if _, err := p.file.WriteAt(pg[:], offset); err != nil {
		return fmt.Errorf("storage: failed to write page %d: %w", pageNum, err)
	}
	return nil
}

// Close flushes every loaded page and closes the file descriptor.
func (p *Pager) Close() error {
	for pageNum := uint32(0); pageNum < p.numPages; pageNum++ {
		if p.cache[pageNum] == nil {
			continue
		}
		if err := p.Flush(pageNum); err != nil {
			return err
		}
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("storage: failed to close database file: %w", err)
	}
	return nil
}
