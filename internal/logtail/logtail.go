package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded zerolog JSON line.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Fields    map[string]string
}

// Parse decodes a zerolog JSON line. Lines that are not JSON objects are
// returned as a message-only entry.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: line}
	}

	e := Entry{Fields: map[string]string{}}
	for k, v := range raw {
		s := fmt.Sprint(v)
		switch k {
		case "time":
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				e.Time = ts
			}
		case "level":
			e.Level = s
		case "component":
			e.Component = s
		case "message":
			e.Message = s
		default:
			e.Fields[k] = s
		}
	}
	return e
}

// Format renders an entry as a single compact line.
func Format(e Entry) string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(strings.ToUpper(levelAbbrev(e.Level)))
		b.WriteByte(' ')
	}
	if e.Component != "" {
		b.WriteString("[" + e.Component + "] ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Fields[k])
	}
	return strings.TrimSpace(b.String())
}

func levelAbbrev(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "dbg"
	case "info":
		return "inf"
	case "warn":
		return "wrn"
	case "error":
		return "err"
	default:
		return level
	}
}
