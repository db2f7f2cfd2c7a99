// Package vfs implements a fixed-capacity, block-allocating RAM disk:
// the filesystem collaborator described in spec §6. Nothing survives a
// restart; every limit is a compile-time constant, in keeping with the
// desktop's fixed-capacity design.
package vfs

import "errors"

// Capacity constants, parameterizing the filesystem per its contract.
const (
	MaxOpen        = 8
	BlockSize      = 64
	NumBlocks      = 256
	MaxFileBlocks  = 20
	MaxFileBytes   = MaxFileBlocks * BlockSize
	MaxFilesStored = 16
	MaxFilenameLen = 10
)

var (
	ErrNotFound      = errors.New("filesystem: file not found")
	ErrExists        = errors.New("filesystem: file already exists")
	ErrDiskFull      = errors.New("filesystem: disk full")
	ErrDirectoryFull = errors.New("filesystem: directory full")
	ErrTooManyOpen   = errors.New("filesystem: too many open files")
	ErrBadFD         = errors.New("filesystem: bad file descriptor")
	ErrFileTooLarge  = errors.New("filesystem: file too large")
	ErrReadOnly      = errors.New("filesystem: file opened read-only")
)

// Filename is a fixed-width, NUL-padded 10-byte name.
type Filename [MaxFilenameLen]byte

// NewFilename truncates or NUL-pads s to the fixed width.
func NewFilename(s string) Filename {
	var f Filename
	n := copy(f[:], s)
	_ = n
	return f
}

// String trims trailing NULs for display.
func (f Filename) String() string {
	n := 0
	for n < len(f) && f[n] != 0 {
		n++
	}
	return string(f[:n])
}

type direntry struct {
	name    Filename
	used    bool
	blocks  []int // indices into disk, in file order
	size    int   // bytes actually written
}

type openFile struct {
	used     bool
	entry    int // index into dir
	writing  bool
	writePos int // next byte offset to write at
	readPos  int // next byte offset to read from
}

// FS is the RAM-backed filesystem handle.
type FS struct {
	disk [NumBlocks][BlockSize]byte
	free [NumBlocks]bool // true == free

	dir  [MaxFilesStored]direntry
	open [MaxOpen]openFile
}

// New creates an empty filesystem with every block free.
func New() *FS {
	fs := &FS{}
	for i := range fs.free {
		fs.free[i] = true
	}
	return fs
}

func (fs *FS) findEntry(name Filename) int {
	for i, d := range fs.dir {
		if d.used && d.name == name {
			return i
		}
	}
	return -1
}

func (fs *FS) freeEntrySlot() int {
	for i, d := range fs.dir {
		if !d.used {
			return i
		}
	}
	return -1
}

func (fs *FS) freeFD() int {
	for i, o := range fs.open {
		if !o.used {
			return i
		}
	}
	return -1
}

func (fs *FS) allocBlock() int {
	for i, free := range fs.free {
		if free {
			fs.free[i] = false
			fs.disk[i] = [BlockSize]byte{}
			return i
		}
	}
	return -1
}

func (fs *FS) freeBlocks(blocks []int) {
	for _, b := range blocks {
		fs.free[b] = true
	}
}

// OpenCreate creates an empty file (truncating if it already exists) and
// opens it for writing, returning a file descriptor.
func (fs *FS) OpenCreate(name string) (int, error) {
	fd := fs.freeFD()
	if fd == -1 {
		return -1, ErrTooManyOpen
	}
	fname := NewFilename(name)
	idx := fs.findEntry(fname)
	if idx != -1 {
		fs.freeBlocks(fs.dir[idx].blocks)
		fs.dir[idx].blocks = nil
		fs.dir[idx].size = 0
	} else {
		idx = fs.freeEntrySlot()
		if idx == -1 {
			return -1, ErrDirectoryFull
		}
		fs.dir[idx] = direntry{name: fname, used: true}
	}
	fs.open[fd] = openFile{used: true, entry: idx, writing: true}
	return fd, nil
}

// OpenRead opens an existing file for reading.
func (fs *FS) OpenRead(name string) (int, error) {
	fd := fs.freeFD()
	if fd == -1 {
		return -1, ErrTooManyOpen
	}
	idx := fs.findEntry(NewFilename(name))
	if idx == -1 {
		return -1, ErrNotFound
	}
	fs.open[fd] = openFile{used: true, entry: idx, writing: false}
	return fd, nil
}

// Write appends bytes to a file opened with OpenCreate, allocating new
// blocks as needed.
func (fs *FS) Write(fd int, data []byte) error {
	if fd < 0 || fd >= MaxOpen || !fs.open[fd].used {
		return ErrBadFD
	}
	of := &fs.open[fd]
	if !of.writing {
		return ErrReadOnly
	}
	entry := &fs.dir[of.entry]
	if entry.size+len(data) > MaxFileBytes {
		return ErrFileTooLarge
	}

	for _, b := range data {
		blockIdx := of.writePos / BlockSize
		offInBlock := of.writePos % BlockSize
		if blockIdx >= len(entry.blocks) {
			blk := fs.allocBlock()
			if blk == -1 {
				return ErrDiskFull
			}
			entry.blocks = append(entry.blocks, blk)
		}
		fs.disk[entry.blocks[blockIdx]][offInBlock] = b
		of.writePos++
	}
	if of.writePos > entry.size {
		entry.size = of.writePos
	}
	return nil
}

// Read fills buf from the current read position, returning the number of
// bytes actually read (0 at end of file).
func (fs *FS) Read(fd int, buf []byte) (int, error) {
	if fd < 0 || fd >= MaxOpen || !fs.open[fd].used {
		return 0, ErrBadFD
	}
	of := &fs.open[fd]
	entry := &fs.dir[of.entry]

	n := 0
	for n < len(buf) && of.readPos < entry.size {
		blockIdx := of.readPos / BlockSize
		offInBlock := of.readPos % BlockSize
		buf[n] = fs.disk[entry.blocks[blockIdx]][offInBlock]
		of.readPos++
		n++
	}
	return n, nil
}

// ReadAll reads the whole file in one call, for callers (like the
// interpreter loader) that want the full source text.
func (fs *FS) ReadAll(fd int) ([]byte, error) {
	if fd < 0 || fd >= MaxOpen || !fs.open[fd].used {
		return nil, ErrBadFD
	}
	entry := &fs.dir[fs.open[fd].entry]
	buf := make([]byte, entry.size-fs.open[fd].readPos)
	n, err := fs.Read(fd, buf)
	return buf[:n], err
}

// Close releases a file descriptor.
func (fs *FS) Close(fd int) error {
	if fd < 0 || fd >= MaxOpen || !fs.open[fd].used {
		return ErrBadFD
	}
	fs.open[fd] = openFile{}
	return nil
}

// ListDirectory returns the current file count and their fixed-width names.
func (fs *FS) ListDirectory() (int, [MaxFilesStored]Filename) {
	var names [MaxFilesStored]Filename
	count := 0
	for _, d := range fs.dir {
		if d.used {
			names[count] = d.name
			count++
		}
	}
	return count, names
}

// WriteFile is a convenience wrapper used by the window's save gesture:
// create-or-truncate, write the full contents, close.
func (fs *FS) WriteFile(name string, contents []byte) error {
	fd, err := fs.OpenCreate(name)
	if err != nil {
		return err
	}
	defer fs.Close(fd)
	return fs.Write(fd, contents)
}

// ReadFile is a convenience wrapper: open-read, read all, close.
func (fs *FS) ReadFile(name string) ([]byte, error) {
	fd, err := fs.OpenRead(name)
	if err != nil {
		return nil, err
	}
	defer fs.Close(fd)
	return fs.ReadAll(fd)
}
