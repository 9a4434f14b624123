package ports

// FileReader defines the interface for reading input files as text.
//
//go:generate go run go.uber.org/mock/mockgen -source=file_reader.go -destination=mocks/mock_file_reader.go -package=mocks
type FileReader interface {
	// ReadText returns the whole file decoded as UTF-8 text.
	ReadText(path string) (string, error)
}
