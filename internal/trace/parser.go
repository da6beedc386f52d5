// Package trace implements the textual trace parser and random trace
// generator that feed a tomasulo.Scheduler — external collaborators to
// the core scheduler, never imported back by it.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Lahhamix/tumasulo-simulator/internal/tomasulo"
)

// ParseError records a single skipped line: parsing continues with the
// rest of the file, matching the "log and skip" error disposition.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
}

// ParseFile opens path and parses it as a trace file.
func ParseFile(path string, logger *logrus.Logger) ([]*tomasulo.Instruction, []ParseError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	instrs, errs := Parse(f, logger)
	return instrs, errs, nil
}

// Parse reads a line-oriented trace from r. Blank lines and lines
// starting with '#' are comments. A malformed line is reported (logged
// and returned in the error slice) and skipped; every other line still
// loads.
func Parse(r io.Reader, logger *logrus.Logger) ([]*tomasulo.Instruction, []ParseError) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	var instrs []*tomasulo.Instruction
	var errs []ParseError

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		instr, err := parseLine(line)
		if err != nil {
			pe := ParseError{Line: lineNum, Text: line, Message: err.Error()}
			errs = append(errs, pe)
			logger.WithFields(logrus.Fields{
				"component": "trace-parser",
				"line":      lineNum,
			}).Warnf("skipping malformed line: %s", err)
			continue
		}
		instrs = append(instrs, instr)
	}
	return instrs, errs
}

func parseLine(line string) (*tomasulo.Instruction, error) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return nil, fmt.Errorf("expected an opcode followed by operands")
	}
	op := tomasulo.Op(strings.ToUpper(strings.TrimSpace(fields[0])))
	operands := splitOperands(fields[1])

	switch op {
	case tomasulo.OpADD, tomasulo.OpSUB, tomasulo.OpMUL, tomasulo.OpDIV:
		if len(operands) != 3 {
			return nil, fmt.Errorf("%s needs 3 operands, got %d", op, len(operands))
		}
		return &tomasulo.Instruction{
			Op:   op,
			Dest: normalizeReg(operands[0]),
			Src1: normalizeReg(operands[1]),
			Src2: normalizeReg(operands[2]),
		}, nil

	case tomasulo.OpLOAD:
		if len(operands) != 2 {
			return nil, fmt.Errorf("LOAD needs 2 operands, got %d", len(operands))
		}
		offset, base, err := parseOffsetBase(operands[1])
		if err != nil {
			return nil, err
		}
		return &tomasulo.Instruction{
			Op:     op,
			Dest:   normalizeReg(operands[0]),
			Base:   base,
			Offset: offset,
		}, nil

	case tomasulo.OpSTORE:
		if len(operands) != 2 {
			return nil, fmt.Errorf("STORE needs 2 operands, got %d", len(operands))
		}
		offset, base, err := parseOffsetBase(operands[0])
		if err != nil {
			return nil, err
		}
		return &tomasulo.Instruction{
			Op:     op,
			Src1:   normalizeReg(operands[1]),
			Base:   base,
			Offset: offset,
		}, nil

	default:
		return nil, fmt.Errorf("unknown operation: %s", fields[0])
	}
}

// splitOperands splits a comma-joined operand list, trimming whitespace
// around each part — whitespace inside the list is insignificant.
func splitOperands(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// parseOffsetBase parses "OFFSET(Rb)" into its signed offset and base
// register name.
func parseOffsetBase(s string) (int, string, error) {
	open := strings.Index(s, "(")
	closeIdx := strings.LastIndex(s, ")")
	if open < 0 || closeIdx < open {
		return 0, "", fmt.Errorf("expected OFFSET(Rb), got %q", s)
	}
	offset, err := strconv.Atoi(strings.TrimSpace(s[:open]))
	if err != nil {
		return 0, "", fmt.Errorf("invalid offset in %q: %w", s, err)
	}
	base := strings.TrimSpace(s[open+1 : closeIdx])
	return offset, normalizeReg(base), nil
}

func normalizeReg(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
