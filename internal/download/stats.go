package download

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"
)

// JobRecord is one completed execution in the statistics file.
type JobRecord struct {
	Timestamp time.Time
	Count     int
	Archive   string
	User      string
}

// NewJobRecord builds a record for a job that just finished, stamped with
// the current time and user.
func NewJobRecord(count int, archive string) JobRecord {
	name := "unknown"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	return JobRecord{
		Timestamp: time.Now(),
		Count:     count,
		Archive:   archive,
		User:      name,
	}
}

// UpdateStatistics appends a job record to the statistics file at path and
// rewrites its summary line.
//
// The file format is a summary line followed by one comma-separated line
// per job:
//
//	Total: 96 photos across 3 executions.
//	6/15/2020 3:04:05 PM,36,album.mhtml,nharrell
//	7/1/2020 11:30:00 AM,24,album2.mhtml,nharrell
//
// A missing file is created. Lines that do not parse are dropped on
// rewrite rather than poisoning the totals.
func UpdateStatistics(path string, job JobRecord) error {
	records := readRecords(path)
	records = append(records, job)

	total := 0
	for _, r := range records {
		total += r.Count
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d photos across %d executions.\n", total, len(records))
	for _, r := range records {
		fmt.Fprintf(&b, "%s,%d,%s,%s\n", r.Timestamp.Format(DateLayout), r.Count, r.Archive, r.User)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// readRecords loads the existing job lines from the statistics file. The
// summary line and any malformed lines are skipped; a missing or
// unreadable file yields no records.
func readRecords(path string) []JobRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var records []JobRecord
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Total:") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			continue
		}
		timestamp, err := time.ParseInLocation(DateLayout, fields[0], time.Local)
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		records = append(records, JobRecord{
			Timestamp: timestamp,
			Count:     count,
			Archive:   fields[2],
			User:      fields[3],
		})
	}
	return records
}
