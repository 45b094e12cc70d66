package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
	"github.com/trytobebee/snake_classic/pkg/renderer"
)

// RecordFile describes one recorded session on disk
type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

// maxFrameGap caps the pause between frames, e.g. time spent on the start screen
const maxFrameGap = 2 * time.Second

func main() {
	var (
		recordDir = flag.String("dir", config.RecordDir, "directory with recorded sessions")
		file      = flag.String("file", "", "recording to play; empty lists the directory")
		speed     = flag.Float64("speed", 1, "playback speed multiplier")
	)
	flag.Parse()

	if *file == "" {
		records, err := listRecords(*recordDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "replay:", err)
			os.Exit(1)
		}
		if len(records) == 0 {
			fmt.Printf("📼 No recordings in %s\n", *recordDir)
			return
		}
		fmt.Println("📼 Replay Library")
		for _, r := range records {
			fmt.Printf("  %s  session=%s  %d bytes  %s\n", r.Name, r.SessionID, r.Size, r.Time.Format("2006-01-02 15:04:05"))
		}
		return
	}

	path := *file
	if !strings.ContainsRune(path, os.PathSeparator) {
		path = filepath.Join(*recordDir, path)
	}
	if err := play(path, *speed); err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
}

func play(path string, speed float64) error {
	if speed <= 0 {
		speed = 1
	}
	records, err := game.LoadRecords(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s holds no frames", path)
	}

	size := boardSize(records)
	render := renderer.NewTerminalRenderer(size)
	render.HideCursor()
	defer render.ShowCursor()

	for i, rec := range records {
		if i > 0 {
			time.Sleep(frameDelay(records[i-1].Time, rec.Time, speed))
		}
		if err := render.Render(rec.State); err != nil {
			return fmt.Errorf("render frame %d: %w", rec.Seq, err)
		}
	}

	last := records[len(records)-1].State
	fmt.Printf("\n  📼 End of replay: %d frames, score %d, %s\n", len(records), last.Score, last.Phase)
	return nil
}

// frameDelay scales the recorded gap between two frames
func frameDelay(prev, next time.Time, speed float64) time.Duration {
	gap := next.Sub(prev)
	if gap < 0 {
		gap = 0
	}
	if gap > maxFrameGap {
		gap = maxFrameGap
	}
	return time.Duration(float64(gap) / speed)
}

// boardSize infers the board from the recording; recordings do not carry
// the size, so the default is widened to fit every recorded cell.
func boardSize(records []game.StepRecord) int {
	size := config.GridSize
	for _, rec := range records {
		for _, p := range rec.State.Snake {
			if p.X+1 > size {
				size = p.X + 1
			}
			if p.Y+1 > size {
				size = p.Y + 1
			}
		}
	}
	return size
}

// listRecords returns recordings in dir, newest first
func listRecords(dir string) ([]RecordFile, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var records []RecordFile
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		sessID := ""
		if parts := strings.Split(strings.TrimSuffix(f.Name(), ".jsonl"), "_"); len(parts) >= 3 {
			sessID = strings.Join(parts[1:len(parts)-1], "_")
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}
