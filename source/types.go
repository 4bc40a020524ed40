package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHasBOM indicates a UTF-8 BOM was detected. The BOM stays in
	// Content: round-trip fidelity requires the exact original bytes.
	FileHasBOM
	// FileHasCRLF indicates at least one \r\n sequence was detected.
	// Line endings are never normalized, for the same reason.
	FileHasCRLF
)

// File captures metadata and verbatim content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
