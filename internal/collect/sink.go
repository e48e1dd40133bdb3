package collect

import (
	"bufio"
	"encoding/csv"
	"os"
)

// RawSink writes raw host documents to a JSONL file, one per line, in
// arrival order.
type RawSink struct {
	file   *os.File
	writer *bufio.Writer
}

func NewRawSink(path string) (*RawSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &RawSink{file: file, writer: bufio.NewWriter(file)}, nil
}

// WriteRecord appends one document followed by a newline. The bytes go
// out exactly as received from the API.
func (s *RawSink) WriteRecord(doc []byte) error {
	if _, err := s.writer.Write(doc); err != nil {
		return err
	}
	return s.writer.WriteByte('\n')
}

func (s *RawSink) Close() error {
	if err := s.writer.Flush(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// CSVSink writes the flattened endpoint rows. The header goes out at
// creation so a run with zero matches still yields a parseable file.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
}

func NewCSVSink(path string) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(file)
	if err := w.Write(Header()); err != nil {
		file.Close()
		return nil, err
	}
	return &CSVSink{file: file, writer: w}, nil
}

func (s *CSVSink) WriteRows(rows []Row) error {
	for _, row := range rows {
		if err := s.writer.Write(row.Fields()); err != nil {
			return err
		}
	}
	return nil
}

func (s *CSVSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
