package parse

import "strings"

// Candidate separators in detection priority order. The first candidate only
// loses to one that scores strictly higher, so ties resolve to the earliest
// entry.
var separatorCandidates = []rune{';', ',', '\t', '|'}

// DefaultSeparator is used when the input has no non-blank lines to sample.
const DefaultSeparator = ','

// sampleLineCount caps how many non-blank lines feed the detector.
const sampleLineCount = 5

// DetectSeparator guesses the field delimiter of raw delimited text by
// counting naive split segments over the first few non-blank lines. The
// result is a heuristic, not a guarantee, but it is deterministic.
func DetectSeparator(text string) rune {
	var sample []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == sampleLineCount {
			break
		}
	}
	if len(sample) == 0 {
		return DefaultSeparator
	}

	best := separatorCandidates[0]
	bestScore := 0
	for i, sep := range separatorCandidates {
		score := 0
		for _, line := range sample {
			score += strings.Count(line, string(sep)) + 1
		}
		if i == 0 || score > bestScore {
			best = sep
			bestScore = score
		}
	}
	return best
}

// splitLines splits text on \n, tolerating \r\n line endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
