package workload

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/viant/afs"

	"github.com/checkin-sim/checkin-sim/sim"
)

// tick is the unit of arrival and service times in the input file.
const tick = 100 * time.Millisecond

// maxTicks is the largest time field that still fits in a time.Duration.
const maxTicks = math.MaxInt64 / int64(tick)

// Load reads and parses the customer file at url through fs. Local paths,
// file:// and mem:// URLs are all accepted. The result is sorted by arrival.
func Load(ctx context.Context, fs afs.Service, url string) ([]*sim.Customer, error) {
	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, &InputOpenError{URL: url, Err: err}
	}
	customers, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", url)
	}
	SortByArrival(customers)
	return customers, nil
}

// Parse reads the customer file format:
//
//	N
//	id:class,arrival,service
//	...
//
// class 0 is economy and anything else business; arrival and service are in
// tenths of a second. Blank lines are skipped. Reaching the end of input
// before N records is accepted; records past N are ignored. Both are logged.
func Parse(r io.Reader) ([]*sim.Customer, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			if text := strings.TrimSpace(scanner.Text()); text != "" {
				return text, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		return nil, &MalformedRecordError{Line: 1, Reason: "missing customer count"}
	}
	total, err := strconv.Atoi(header)
	if err != nil || total < 0 {
		return nil, &MalformedRecordError{Line: lineNo, Text: header, Reason: "customer count must be a non-negative integer"}
	}

	customers := make([]*sim.Customer, 0, total)
	seen := make(map[int]int, total)
	for len(customers) < total {
		text, ok := next()
		if !ok {
			break
		}
		c, reason := parseRecord(text)
		if reason != "" {
			return nil, &MalformedRecordError{Line: lineNo, Text: text, Reason: reason}
		}
		if first, dup := seen[c.ID]; dup {
			return nil, &MalformedRecordError{Line: lineNo, Text: text,
				Reason: "duplicate customer ID, first seen on line " + strconv.Itoa(first)}
		}
		seen[c.ID] = lineNo
		customers = append(customers, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", lineNo+1)
	}

	if len(customers) < total {
		logrus.Warnf("input declares %d customers but ends after %d", total, len(customers))
	}
	if extra, ok := next(); ok {
		logrus.Warnf("ignoring records after the declared %d customers, starting at line %d: %q", total, lineNo, extra)
	}
	return customers, nil
}

// parseRecord parses "id:class,arrival,service". A non-empty reason means
// the record is malformed.
func parseRecord(text string) (*sim.Customer, string) {
	idPart, rest, ok := strings.Cut(text, ":")
	if !ok {
		return nil, "missing ':' after customer ID"
	}
	fields := strings.Split(rest, ",")
	if len(fields) != 3 {
		return nil, "want class,arrival,service after ':'"
	}

	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return nil, "customer ID is not an integer"
	}
	var values [3]int
	for i, name := range []string{"class", "arrival", "service"} {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, name + " is not an integer"
		}
		values[i] = v
	}
	if values[1] < 0 {
		return nil, "arrival must not be negative"
	}
	if values[2] < 0 {
		return nil, "service must not be negative"
	}
	if int64(values[1]) > maxTicks {
		return nil, "arrival is too large"
	}
	if int64(values[2]) > maxTicks {
		return nil, "service is too large"
	}

	return sim.NewCustomer(id, sim.ClassFromCode(values[0]),
		time.Duration(values[1])*tick, time.Duration(values[2])*tick), ""
}

// SortByArrival orders customers by arrival offset, keeping input order
// among equal arrivals.
func SortByArrival(customers []*sim.Customer) {
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].Arrival < customers[j].Arrival
	})
}

// Breakdown counts customers per class.
func Breakdown(customers []*sim.Customer) (business, economy int) {
	for _, c := range customers {
		if c.Class == sim.High {
			business++
		} else {
			economy++
		}
	}
	return business, economy
}
