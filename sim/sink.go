package sim

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// CompletionSink receives one record per completed job.
type CompletionSink interface {
	Write(c CompletedJob) error
	Close() error
}

// FormatCompletedJob renders the one-line record written for a completed job.
func FormatCompletedJob(c CompletedJob) string {
	return fmt.Sprintf("Job %-15d, total_duration: %-15v, turnaround: %-15v, tier: %s",
		c.Job.ID, c.Job.TotalDuration, c.Job.Turnaround(), c.Tier)
}

// FileSink appends completed-job records to a text file. The file is
// opened on first use, so a bad path surfaces when records are written
// rather than before the run starts.
type FileSink struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	openErr error // first open failure, already returned to the caller
}

// NewFileSink returns a sink for path. Nothing is opened yet.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// open opens path for appending, creating it if absent.
func (s *FileSink) open() error {
	if s.file != nil {
		return nil
	}
	if s.openErr != nil {
		return s.openErr
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		s.openErr = fmt.Errorf("opening output file: %w", err)
		return s.openErr
	}
	s.file = f
	s.writer = bufio.NewWriter(f)
	return nil
}

// Write appends one line for c.
func (s *FileSink) Write(c CompletedJob) error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.writer, FormatCompletedJob(c)); err != nil {
		return fmt.Errorf("writing job %d to %s: %w", c.Job.ID, s.path, err)
	}
	return nil
}

// Close flushes buffered records and closes the file, creating it first if
// nothing was written. An open failure already reported by Write is not
// reported again.
func (s *FileSink) Close() error {
	if s.openErr != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	flushErr := s.writer.Flush()
	if flushErr != nil {
		flushErr = fmt.Errorf("flushing %s: %w", s.path, flushErr)
	}
	closeErr := s.file.Close()
	if closeErr != nil {
		closeErr = fmt.Errorf("closing %s: %w", s.path, closeErr)
	}
	s.file, s.writer = nil, nil
	return errors.Join(flushErr, closeErr)
}
