package demographics

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// WorkerFlow is one commuter-flow record: n_workers residents of unit
// FromID commute to work in unit ToID (spec §6 workerflow file).
type WorkerFlow struct {
	FromID, ToID int
	NWorkers     int
}

// ReadWorkerflow parses the workerflow file (spec §6): binary, a stream
// of (from_id, to_id, n_workers) unsigned 32-bit integer triplets. The
// flows are decoded only: the initializer does not consume them, and
// every resident's work cell is its home cell.
func ReadWorkerflow(path string) ([]WorkerFlow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demographics: open workerflow file %s: %w", path, err)
	}
	defer f.Close()

	var flows []WorkerFlow
	var buf [12]byte
	for {
		_, err := io.ReadFull(f, buf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("demographics: read workerflow file %s: %w", path, err)
		}
		flows = append(flows, WorkerFlow{
			FromID:   int(binary.LittleEndian.Uint32(buf[0:4])),
			ToID:     int(binary.LittleEndian.Uint32(buf[4:8])),
			NWorkers: int(binary.LittleEndian.Uint32(buf[8:12])),
		})
	}
	return flows, nil
}
