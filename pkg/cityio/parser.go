package cityio

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/util"
	"go.uber.org/zap"
)

const (
	// DefaultMaxRecords is the record limit used when none is configured.
	DefaultMaxRecords = 50000
	bzip2Extension    = ".bz2"

	// longer lines can not be a record, they end the input like a malformed one.
	maxLineBytes = 1 << 20
)

var ErrEmptyPath = errors.New("empty file path")

// Parser reads "<id> <x> <y>" records, one per line.
type Parser struct {
	maxRecords int
	logger     *zap.Logger
}

// NewParser. maxRecords <= 0 means no limit.
func NewParser(maxRecords int, logger *zap.Logger) *Parser {
	return &Parser{
		maxRecords: maxRecords,
		logger:     logger,
	}
}

// Parse reads cities from filePath. files ending with .bz2 are decompressed on the fly.
// a file that can not be opened is an error with code util.ErrIO.
func (p *Parser) Parse(filePath string) ([]datastructure.City, error) {
	if filePath == "" {
		return nil, util.WrapErrorf(ErrEmptyPath, util.ErrIO, "could not open input file")
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIO, "could not open file %s", filePath)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filePath, bzip2Extension) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrIO, "could not decompress file %s", filePath)
		}
		defer bz.Close()
		r = bz
	}

	cities, err := p.ParseReader(r)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIO, "could not read file %s", filePath)
	}

	p.logger.Info("cities parsed", zap.String("file", filePath), zap.Int("cities", len(cities)))
	return cities, nil
}

// ParseReader reads records until EOF, the record limit, or the first malformed line.
// a malformed line ends the input, the records read before it are returned without error.
// blank lines are skipped.
func (p *Parser) ParseReader(r io.Reader) ([]datastructure.City, error) {
	cities := make([]datastructure.City, 0, 1024)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNumber := 0
	for sc.Scan() {
		lineNumber++
		if p.maxRecords > 0 && len(cities) >= p.maxRecords {
			p.logger.Debug("record limit reached", zap.Int("max_records", p.maxRecords))
			break
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		city, ok := parseRecord(line)
		if !ok {
			p.logger.Debug("malformed record ends the input", zap.Int("line", lineNumber),
				zap.String("record", line))
			break
		}
		cities = append(cities, city)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			p.logger.Debug("over-long record ends the input", zap.Int("line", lineNumber+1),
				zap.Int("max_line_bytes", maxLineBytes))
			return cities, nil
		}
		return nil, err
	}
	return cities, nil
}

func parseRecord(line string) (datastructure.City, bool) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return datastructure.City{}, false
	}

	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return datastructure.City{}, false
	}
	x, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return datastructure.City{}, false
	}
	y, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return datastructure.City{}, false
	}
	return datastructure.NewCity(id, x, y), true
}
