package renderer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gulbrand/rusty-the-snake/pkg/game"
)

// Frame is one recorded snapshot
type Frame struct {
	Time  time.Time      `json:"time"`
	State game.GameState `json:"state"`
}

// Recorder writes snapshots as JSON lines in the background so the game loop
// never waits on the writer
type Recorder struct {
	writer     *bufio.Writer
	closer     io.Closer
	recordChan chan Frame
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	dropped    int
	logger     *log.Logger
}

// NewRecorder starts a recorder on w. If w is also an io.Closer it is closed by Close.
func NewRecorder(w io.Writer, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	r := &Recorder{
		writer:     bufio.NewWriter(w),
		recordChan: make(chan Frame, 1000), // Buffer up to 1000 frames
		logger:     logger,
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r
}

// Render queues a frame. Non-blocking: drops the frame if the queue is full.
func (r *Recorder) Render(s game.GameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return fmt.Errorf("recorder closed")
	}

	select {
	case r.recordChan <- Frame{Time: time.Now(), State: s}:
	default:
		r.dropped++
	}
	return nil
}

// Dropped returns how many frames were discarded because the queue was full
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close flushes the buffer and closes the underlying writer
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait() // Wait for writeLoop to finish
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for frame := range r.recordChan {
		if err := encoder.Encode(frame); err != nil {
			r.logger.Printf("Error recording frame: %v", err)
			continue
		}
	}
	if err := r.writer.Flush(); err != nil {
		r.logger.Printf("Error flushing recording: %v", err)
	}
}

// ReadFrames decodes a recording line by line, calling fn for each frame until
// fn fails or the input ends.
func ReadFrames(r io.Reader, fn func(Frame) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var frame Frame
		if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := fn(frame); err != nil {
			return err
		}
	}
	return scanner.Err()
}
